package service

import (
	"strings"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/ledger"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/shopspring/decimal"
)

// TransactionForm 是记账/改账的表单数据。HTTP 层只负责把 JSON 绑定进来，
// 业务校验全部在 ValidateTransactionForm 里完成。
type TransactionForm struct {
	Kind     string          `json:"type"` // income / expense / transfer
	Total    decimal.Decimal `json:"total"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Note     string          `json:"note"`
	Category string          `json:"category"`
	Asset    string          `json:"asset"`

	// 转账专用
	FromAsset string `json:"from_asset"`
	ToAsset   string `json:"to_asset"`

	// 改账专用：定位要改的流水
	BucketID string `json:"bucket_id"`
	LineUID  string `json:"line_uid"`
}

// AssetForm 是创建/修改钱包的表单数据。
type AssetForm struct {
	Name        string          `json:"name"`
	OldName     string          `json:"old_name"` // 修改时的原名称
	Nominal     decimal.Decimal `json:"nominal"`
	Category    string          `json:"category"`
	NewCategory string          `json:"new_category"` // 新建分组时优先生效
	Description string          `json:"description"`
	Color       string          `json:"color"`
}

// ValidateTransactionForm 纯函数校验记账表单，返回字段错误列表
//（空列表表示通过），从不 panic。
func ValidateTransactionForm(form TransactionForm, forEdit bool) []FieldError {
	var errs []FieldError

	switch form.Kind {
	case ledger.KindIncome, ledger.KindExpense:
		if strings.TrimSpace(form.Asset) == "" {
			errs = append(errs, FieldError{Path: "asset", Message: "asset is required", NotifMessage: "请选择钱包"})
		}
	case ledger.KindTransfer:
		if forEdit {
			// 转账生成的两条流水只能删掉重记，不支持按转账方式编辑
			errs = append(errs, FieldError{Path: "type", Message: "transfer cannot be edited", NotifMessage: "转账记录请删除后重新记一笔"})
			break
		}
		if strings.TrimSpace(form.FromAsset) == "" {
			errs = append(errs, FieldError{Path: "from_asset", Message: "from_asset is required", NotifMessage: "请选择转出钱包"})
		}
		if strings.TrimSpace(form.ToAsset) == "" {
			errs = append(errs, FieldError{Path: "to_asset", Message: "to_asset is required", NotifMessage: "请选择转入钱包"})
		}
		if form.FromAsset != "" && strings.TrimSpace(form.FromAsset) == strings.TrimSpace(form.ToAsset) {
			errs = append(errs, FieldError{Path: "to_asset", Message: "from and to must differ", NotifMessage: "转出和转入钱包不能相同"})
		}
	default:
		errs = append(errs, FieldError{Path: "type", Message: "unknown transaction type", NotifMessage: "交易类型不合法"})
	}

	total, _ := form.Total.Float64()
	if err := util.ValidateAmount(total); err != nil {
		errs = append(errs, FieldError{Path: "total", Message: err.Error(), NotifMessage: "请输入有效金额"})
	}
	if err := util.ValidateDate(form.Date); err != nil {
		errs = append(errs, FieldError{Path: "date", Message: err.Error(), NotifMessage: "交易日期不合法"})
	}
	if form.Kind != ledger.KindTransfer {
		// 转账的分类固定为 ledger.TransferCategory，不收表单值
		if err := util.ValidateCategory(form.Category); err != nil {
			errs = append(errs, FieldError{Path: "category", Message: err.Error(), NotifMessage: "请选择分类"})
		}
	}
	if strings.TrimSpace(form.Note) == "" {
		errs = append(errs, FieldError{Path: "note", Message: "note is required", NotifMessage: "请填写备注"})
	}

	if forEdit {
		if form.BucketID == "" {
			errs = append(errs, FieldError{Path: "bucket_id", Message: "bucket_id is required", NotifMessage: "要修改的记录不合法"})
		}
		if form.LineUID == "" {
			errs = append(errs, FieldError{Path: "line_uid", Message: "line_uid is required", NotifMessage: "要修改的记录不合法"})
		}
	}

	return errs
}

// ValidateAssetForm 纯函数校验钱包表单。
func ValidateAssetForm(form AssetForm, forUpdate bool) []FieldError {
	var errs []FieldError

	if err := util.ValidateAssetName(form.Name); err != nil {
		errs = append(errs, FieldError{Path: "name", Message: err.Error(), NotifMessage: "钱包名称不合法"})
	}
	if form.Nominal.IsNegative() {
		errs = append(errs, FieldError{Path: "nominal", Message: "nominal must not be negative", NotifMessage: "余额不能为负数"})
	}
	if strings.TrimSpace(form.Category) == "" && strings.TrimSpace(form.NewCategory) == "" {
		errs = append(errs, FieldError{Path: "category", Message: "category is required", NotifMessage: "请选择钱包分组"})
	}
	if forUpdate {
		if err := util.ValidateAssetName(form.OldName); err != nil {
			errs = append(errs, FieldError{Path: "old_name", Message: err.Error(), NotifMessage: "原钱包名称不合法"})
		}
	}

	return errs
}

// group 计算钱包最终归属的分组：填了新分组就用新分组。
func (f AssetForm) group() string {
	if strings.TrimSpace(f.NewCategory) != "" {
		return f.NewCategory
	}
	return f.Category
}
