package ledger

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 交易类型：收入 / 支出 / 转账
const (
	KindIncome   = "income"
	KindExpense  = "expense"
	KindTransfer = "transfer"
)

// TransferCategory 是转账生成的两条流水统一使用的分类。
const TransferCategory = "转账"

var (
	ErrBucketNotFound   = errors.New("day bucket not found")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrAssetNotFound    = errors.New("asset not found")
)

// LineItem 表示一笔有符号的资金流水，通过 Asset 名称（宽松比较，
// 两侧 TrimSpace）挂在某个钱包下。
// 符号约定：收入为正，支出为负；转账的出账为负、入账为正。
type LineItem struct {
	UID      string          `json:"uid"`
	Asset    string          `json:"asset"`
	Category string          `json:"category"`
	Item     string          `json:"item"` // 自由文本备注
	Price    decimal.Decimal `json:"price"`
}

// DayBucket 是账本中某个日历日的流水分组。
// 不变式：一个账本里同一个 Header 最多只有一个桶，且桶的 Body 永远非空
// （任何清空 Body 的操作必须连桶一起删掉）。
type DayBucket struct {
	ID     string     `json:"id"`
	Header Day        `json:"header"`
	Body   []LineItem `json:"body"`
}

// Ledger 是一个用户的完整账本。桶之间没有顺序语义。
type Ledger []DayBucket

// FindBucket 按日历日查找桶，找不到返回 nil。
func (l Ledger) FindBucket(day Day) *DayBucket {
	for i := range l {
		if l[i].Header == day {
			return &l[i]
		}
	}
	return nil
}

// FindBucketByID 按桶 id 查找，找不到返回 nil。
func (l Ledger) FindBucketByID(id string) *DayBucket {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// dropEmptyBuckets 过滤掉 Body 为空的桶。
func (l Ledger) dropEmptyBuckets() Ledger {
	out := l[:0]
	for _, b := range l {
		if len(b.Body) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Asset 表示一个钱包：名字在单个用户内唯一（TrimSpace 后比较），
// Amount 是由账本流水推导出来的余额。
// 不变式：Amount 必须精确等于账本里所有 asset 等于该钱包名的流水 Price 之和。
type Asset struct {
	Name        string          `json:"name"`
	Group       string          `json:"group"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
}

// AssetTable 是一个用户的钱包表。
type AssetTable []Asset

// Find 按名称查找钱包（TrimSpace 后比较），找不到返回 -1。
func (t AssetTable) Find(name string) int {
	name = strings.TrimSpace(name)
	for i := range t {
		if strings.TrimSpace(t[i].Name) == name {
			return i
		}
	}
	return -1
}

// DefaultAssets 返回新用户的三个默认钱包（余额为零）。
func DefaultAssets() AssetTable {
	return AssetTable{
		{
			Name:        "现金钱包",
			Group:       "现金",
			Amount:      decimal.Zero,
			Description: "日常现金",
			Color:       "#35bd55",
		},
		{
			Name:        "银行卡",
			Group:       "银行账户",
			Amount:      decimal.Zero,
			Description: "储蓄卡余额",
			Color:       "#3577bd",
		},
		{
			Name:        "电子钱包",
			Group:       "电子钱包",
			Amount:      decimal.Zero,
			Description: "日常线上支付",
			Color:       "#bd356b",
		},
	}
}

// NewLineItem 构造一条新流水（自动分配 uid）。Price 的符号由调用方
// 按交易类型定好再传进来。
func NewLineItem(asset, category, item string, price decimal.Decimal) LineItem {
	return LineItem{
		UID:      newID(),
		Asset:    asset,
		Category: category,
		Item:     item,
		Price:    price,
	}
}

// newID 生成桶 id / 流水 uid。
func newID() string { return uuid.NewString() }
