package ledger

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	// 标准格式
	d, err := ParseDay("2024-01-05")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if d.String() != "2024-01-05" {
		t.Errorf("期望 2024-01-05，实际 %s", d)
	}

	// RFC3339 时间戳只取 UTC 日期部分
	d, err = ParseDay("2024-01-05T23:30:00+08:00")
	if err != nil {
		t.Fatalf("解析 RFC3339 失败: %v", err)
	}
	// +08:00 的 23:30 换算到 UTC 是 15:30，同一天
	if d.String() != "2024-01-05" {
		t.Errorf("时区换算错误: 期望 2024-01-05，实际 %s", d)
	}

	// 无效格式
	for _, bad := range []string{"", "2024/01/05", "05-01-2024", "not-a-date"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) 应返回错误", bad)
		}
	}
}

func TestDayNormalize(t *testing.T) {
	// 越界日期归一化
	d := NewDay(2024, time.February, 30)
	if d.String() != "2024-03-01" {
		t.Errorf("归一化错误: 期望 2024-03-01，实际 %s", d)
	}
}

func TestDayEquality(t *testing.T) {
	a := NewDay(2024, time.January, 5)
	b, _ := ParseDay("2024-01-05")
	if a != b {
		t.Error("相同日历日的 Day 应该相等")
	}

	c := a.AddDays(1)
	if a == c {
		t.Error("不同日历日的 Day 不应相等")
	}
	if !c.After(a) || !a.Before(c) {
		t.Error("After/Before 判断错误")
	}
}

func TestDayJSONRoundTrip(t *testing.T) {
	d := NewDay(2024, time.June, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if string(data) != `"2024-06-15"` {
		t.Errorf("JSON 格式错误: %s", data)
	}

	var back Day
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if back != d {
		t.Errorf("往返不一致: 期望 %s，实际 %s", d, back)
	}
}
