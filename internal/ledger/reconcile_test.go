package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testLedger 构造一个两天、三条流水、两个钱包的账本
func testLedger() Ledger {
	l := Ledger{}
	l = Allocate(l, []LineItem{
		NewLineItem("现金钱包", "工资", "工资", decimal.NewFromInt(50000)),
		NewLineItem("现金钱包", "餐饮", "晚饭", decimal.NewFromInt(-200)),
	}, NewDay(2024, time.January, 5))
	l = Allocate(l, []LineItem{
		NewLineItem(" 银行卡 ", "购物", "日用品", decimal.NewFromInt(-100)),
	}, NewDay(2024, time.January, 6))
	return l
}

func TestRenameAsset(t *testing.T) {
	l := testLedger()

	out := RenameAsset(l, "现金钱包", "零钱")

	for _, b := range out {
		for _, item := range b.Body {
			if item.Asset == "现金钱包" {
				t.Fatal("改名后不应再有旧名称的流水")
			}
		}
	}
	// 两条改挂成功，且不影响别的钱包（宽松比较：带空格的也算）
	count := 0
	for _, b := range out {
		for _, item := range b.Body {
			if item.Asset == "零钱" {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("期望2条流水改挂到新名称，实际%d", count)
	}
}

func TestRenameAsset_TrimCompare(t *testing.T) {
	l := testLedger()

	// 流水里存的是 " 银行卡 "，按去空格比较也要能改到
	out := RenameAsset(l, "银行卡", "工资卡")

	found := false
	for _, b := range out {
		for _, item := range b.Body {
			if item.Asset == "工资卡" {
				found = true
			}
		}
	}
	if !found {
		t.Error("宽松比较失败：带空格的流水没有被改挂")
	}
}

func TestParseDeleteMode(t *testing.T) {
	mode, err := ParseDeleteMode("delete-transaction")
	if err != nil || mode.Move {
		t.Errorf("delete-transaction 解析错误: %+v, %v", mode, err)
	}

	mode, err = ParseDeleteMode("move-transaction to-zero-wallet")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if !mode.Move || mode.Target != "Zero Wallet" {
		t.Errorf("目标钱包解析错误: %+v", mode)
	}

	for _, bad := range []string{"", "move-transaction", "drop-everything"} {
		if _, err := ParseDeleteMode(bad); err == nil {
			t.Errorf("ParseDeleteMode(%q) 应返回错误", bad)
		}
	}
}

func TestDeleteAssetCascade_Remove(t *testing.T) {
	l := testLedger()

	out := DeleteAssetCascade(l, "现金钱包", DeleteMode{})

	// 现金钱包的两条流水都删掉，1月5日的桶被清空后一起删掉
	if len(out) != 1 {
		t.Fatalf("期望只剩1个桶，实际%d", len(out))
	}
	for _, item := range out[0].Body {
		if item.Asset == "现金钱包" {
			t.Error("被删钱包的流水仍然存在")
		}
	}
}

func TestDeleteAssetCascade_Move(t *testing.T) {
	l := testLedger()

	out := DeleteAssetCascade(l, "现金钱包", DeleteMode{Move: true, Target: "零钱"})

	// 流水一条不少，只是改挂
	total := 0
	for _, b := range out {
		total += len(b.Body)
	}
	if total != 3 {
		t.Errorf("挪流水模式不应减少流水数量: %d", total)
	}
	for _, b := range out {
		for _, item := range b.Body {
			if item.Asset == "现金钱包" {
				t.Error("仍有流水挂在被删钱包下")
			}
		}
	}
}

func TestNudgeBalance(t *testing.T) {
	table := DefaultAssets()

	out, err := NudgeBalance(table, "现金钱包", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("调整失败: %v", err)
	}
	if !out[out.Find("现金钱包")].Amount.Equal(decimal.NewFromInt(500)) {
		t.Error("余额未增加")
	}

	// 允许为负：删掉收入后钱包就是负的，截断只会藏住不一致
	out, err = NudgeBalance(out, "现金钱包", decimal.NewFromInt(-800))
	if err != nil {
		t.Fatalf("调整失败: %v", err)
	}
	if !out[out.Find("现金钱包")].Amount.Equal(decimal.NewFromInt(-300)) {
		t.Errorf("余额应允许为负: %s", out[out.Find("现金钱包")].Amount)
	}

	if _, err := NudgeBalance(out, "不存在的钱包", decimal.NewFromInt(1)); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("应返回 ErrAssetNotFound，实际 %v", err)
	}
}

func TestRecomputeFromLedger(t *testing.T) {
	l := testLedger()
	table := AssetTable{
		{Name: "现金钱包", Group: "现金", Description: "日常现金", Color: "#35bd55"},
		{Name: "空钱包", Group: "现金", Description: "没有流水", Color: "#000000"},
	}

	out := RecomputeFromLedger(l, table)

	// 现金钱包 = 50000 - 200
	if idx := out.Find("现金钱包"); !out[idx].Amount.Equal(decimal.NewFromInt(49800)) {
		t.Errorf("现金钱包余额错误: %s", out[idx].Amount)
	}
	// 表里有但账本没有的钱包归零保留
	if idx := out.Find("空钱包"); idx == -1 || !out[idx].Amount.IsZero() {
		t.Error("无流水的钱包应保留且余额为0")
	}
	// 账本里有但表里没有的钱包补默认元信息
	idx := out.Find("银行卡")
	if idx == -1 {
		t.Fatal("账本里出现的钱包应补进表里")
	}
	if !out[idx].Amount.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("补录钱包余额错误: %s", out[idx].Amount)
	}
	if out[idx].Color == "" || out[idx].Group == "" {
		t.Error("补录钱包应有默认分组和颜色")
	}
	// 元信息保留
	if i := out.Find("现金钱包"); out[i].Group != "现金" || out[i].Color != "#35bd55" {
		t.Error("已有钱包的元信息应保留")
	}
}

func TestRecomputeFromLedger_Idempotent(t *testing.T) {
	l := testLedger()

	once := RecomputeFromLedger(l, DefaultAssets())
	twice := RecomputeFromLedger(l, once)

	if len(once) != len(twice) {
		t.Fatalf("幂等性被破坏: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Name != twice[i].Name || !once[i].Amount.Equal(twice[i].Amount) {
			t.Errorf("第二次重算结果不同: %+v vs %+v", once[i], twice[i])
		}
	}
}
