package ledger

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf 计算某个钱包余额占总余额的百分比，保留两位小数。
// 总余额为 0 时返回 0，避免除零。纯函数，无副作用。
func PercentOf(t AssetTable, asset Asset) float64 {
	total := decimal.Zero
	for i := range t {
		total = total.Add(t[i].Amount)
	}
	if total.IsZero() {
		return 0
	}

	percent := asset.Amount.Div(total).Mul(hundred).Round(2)
	f, _ := percent.Float64()
	return f
}
