package ledger

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// RenameAsset 把账本里所有挂在 oldName 下的流水改挂到 newName
//（两侧 TrimSpace 后比较）。钱包表里的改名由调用方在同一次事务里完成。
func RenameAsset(l Ledger, oldName, newName string) Ledger {
	oldName = strings.TrimSpace(oldName)
	for i := range l {
		for j := range l[i].Body {
			if strings.TrimSpace(l[i].Body[j].Asset) == oldName {
				l[i].Body[j].Asset = newName
			}
		}
	}
	return l
}

// DeleteMode 描述删除钱包时对引用它的流水怎么处理：
// 直接删掉，或者整体改挂到另一个钱包。
type DeleteMode struct {
	Move   bool
	Target string // Move 为 true 时的目标钱包名
}

// ParseDeleteMode 解析删除选项的表单值：
// "delete-transaction" 表示连流水一起删；
// "move-transaction to-<name>" 表示把流水挪到 <name>（连字符代表空格）。
func ParseDeleteMode(option string) (DeleteMode, error) {
	option = strings.TrimSpace(option)
	if option == "delete-transaction" {
		return DeleteMode{}, nil
	}
	if strings.HasPrefix(option, "move-transaction") {
		_, raw, found := strings.Cut(option, "to-")
		if !found || raw == "" {
			return DeleteMode{}, fmt.Errorf("delete option %q: missing move target", option)
		}
		target := capitalizeWords(strings.ReplaceAll(raw, "-", " "))
		return DeleteMode{Move: true, Target: target}, nil
	}
	return DeleteMode{}, fmt.Errorf("unknown delete option %q", option)
}

// capitalizeWords 把每个单词的首字母大写（表单值里钱包名用连字符传输，
// 还原成空格后再恢复首字母大写）。按 rune 处理，中文名不受影响。
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// DeleteAssetCascade 删除钱包时级联处理账本：
// Move 模式下把所有引用 name 的流水改挂到 mode.Target（等价于只对匹配项的
// RenameAsset）；否则把这些流水删掉，顺带把清空的桶删掉。
func DeleteAssetCascade(l Ledger, name string, mode DeleteMode) Ledger {
	if mode.Move {
		return RenameAsset(l, name, mode.Target)
	}

	name = strings.TrimSpace(name)
	for i := range l {
		kept := l[i].Body[:0]
		for _, item := range l[i].Body {
			if strings.TrimSpace(item.Asset) != name {
				kept = append(kept, item)
			}
		}
		l[i].Body = kept
	}
	return l.dropEmptyBuckets()
}

// NudgeBalance 给指定钱包的余额加一个有符号增量。
// 余额允许为负：对账不变式要求余额精确等于流水之和，删掉一笔收入之后
// 钱包就可能是负的，截断到 0 只会把不一致藏起来。
func NudgeBalance(t AssetTable, name string, delta decimal.Decimal) (AssetTable, error) {
	idx := t.Find(name)
	if idx == -1 {
		return t, fmt.Errorf("nudge %q: %w", name, ErrAssetNotFound)
	}
	t[idx].Amount = t[idx].Amount.Add(delta)
	return t, nil
}

// RecomputeFromLedger 全量重算：对账本和钱包表里出现过的每个钱包名，
// 把余额重算为所有引用它的流水 Price 之和。表里已有的钱包保留
// 分组/描述/颜色，账本里有但表里没有的补一条默认元信息（随机展示色）。
// 任何改账操作完成之后再跑本函数必须是幂等的。
func RecomputeFromLedger(l Ledger, t AssetTable) AssetTable {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range t {
		name := strings.TrimSpace(t[i].Name)
		if _, ok := sums[name]; !ok {
			sums[name] = decimal.Zero
			order = append(order, name)
		}
	}
	for _, b := range l {
		for _, item := range b.Body {
			name := strings.TrimSpace(item.Asset)
			if _, ok := sums[name]; !ok {
				sums[name] = decimal.Zero
				order = append(order, name)
			}
			sums[name] = sums[name].Add(item.Price)
		}
	}

	out := make(AssetTable, 0, len(order))
	for _, name := range order {
		asset := Asset{
			Name:        name,
			Group:       "未分类",
			Amount:      sums[name],
			Description: "对账时自动补录的钱包",
			Color:       RandomColor(),
		}
		if idx := t.Find(name); idx != -1 {
			asset.Name = t[idx].Name
			if t[idx].Group != "" {
				asset.Group = t[idx].Group
			}
			if t[idx].Description != "" {
				asset.Description = t[idx].Description
			}
			if t[idx].Color != "" {
				asset.Color = t[idx].Color
			}
		}
		out = append(out, asset)
	}
	return out
}

// RandomColor 生成一个随机的展示用十六进制颜色。
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
