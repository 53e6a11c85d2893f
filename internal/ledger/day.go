package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayFormat 是日桶 header 的标准字符串格式（ISO-8601 日期）。
const DayFormat = "2006-01-02"

// Day 表示一个日历日（只有年/月/日，统一按 UTC 归一化）。
// 账本按 Day 分桶，桶的比较永远是 Day 的值相等，而不是时间戳比较，
// 避免 23:00 本地时间 vs UTC 零点这类时区边界问题。
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay 返回归一化后的 Day（例如 2024-02-30 会归一化为 2024-03-01）。
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today 返回今天（按 UTC）。
func Today() Day {
	return NewDay(time.Now().UTC().Date())
}

// time 返回该日在 UTC 零点的规范 time.Time 表示。
func (d Day) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year 返回年份。
func (d Day) Year() int { return d.y }

// Month 返回月份。
func (d Day) Month() time.Month { return d.m }

// DayOfMonth 返回几号。
func (d Day) DayOfMonth() int { return d.d }

// IsZero 判断是否为零值（未设置的日期）。
func (d Day) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// After 判断 d 是否晚于 x。
func (d Day) After(x Day) bool { return d.time().After(x.time()) }

// Before 判断 d 是否早于 x。
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// AddDays 返回加上 i 天之后的新 Day。
func (d Day) AddDays(i int) Day { return NewDay(d.y, d.m, d.d+i) }

// String 输出标准格式，如 "2024-01-05"。
func (d Day) String() string { return d.time().Format(DayFormat) }

// ParseDay 解析日期字符串。接受 "2006-01-02"，也接受 RFC3339
// 时间戳（只取换算到 UTC 之后的日期部分），兼容前端直接传
// toISOString() 的情况。
func ParseDay(str string) (Day, error) {
	if t, err := time.Parse(DayFormat, str); err == nil {
		return NewDay(t.Date()), nil
	}
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return NewDay(t.UTC().Date()), nil
	}
	return Day{}, fmt.Errorf("invalid day %q: want %q or RFC3339", str, DayFormat)
}

// MarshalJSON 把 Day 序列化为 "2006-01-02" 字符串。
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 从 JSON 字符串解析 Day。
func (d *Day) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	day, err := ParseDay(str)
	if err != nil {
		return err
	}
	*d = day
	return nil
}
