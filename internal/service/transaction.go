package service

import (
	"errors"
	"net/http"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/ledger"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/store"

	"github.com/shopspring/decimal"
)

// Service 是账本引擎的对外门面：按交易类型分发到分配器/编辑器，
// 再调对账器更新钱包余额，最后通过 Store 把两个加密字段一起落库。
// 所有操作都先校验再改状态，校验不过就不碰任何数据。
type Service struct {
	store *store.Store
}

// New 构造 Service。
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// signedPrice 按交易类型给金额定符号：收入为正，支出为负。
func signedPrice(kind string, total decimal.Decimal) decimal.Decimal {
	if kind == ledger.KindIncome {
		return total.Abs()
	}
	return total.Abs().Neg()
}

// mapError 把引擎错误翻译成统一返回结构。
func mapError(err error) Result {
	switch {
	case errors.Is(err, ledger.ErrBucketNotFound),
		errors.Is(err, ledger.ErrLineItemNotFound):
		return failure(http.StatusNotFound, "记录不存在")
	case errors.Is(err, ledger.ErrAssetNotFound):
		return failure(http.StatusNotFound, "钱包不存在")
	case errors.Is(err, ledger.ErrCorruptedRecord):
		return failure(http.StatusInternalServerError, "数据记录已损坏，无法读取")
	default:
		return failure(http.StatusInternalServerError, "操作失败，请重试")
	}
}

// load 取出并解密一个用户的账本和钱包表（调用方必须已持有该用户的锁）。
func (s *Service) load(userID uint) (ledger.Ledger, ledger.AssetTable, error) {
	ud, err := s.store.LoadUserData(userID)
	if err != nil {
		return nil, nil, err
	}
	l, err := s.store.Ledger(ud)
	if err != nil {
		return nil, nil, err
	}
	t, err := s.store.Assets(ud)
	if err != nil {
		return nil, nil, err
	}
	return l, t, nil
}

// RecordTransaction 记一笔：收入/支出生成一条流水，转账生成
// 出账+入账两条并一次性提交给分配器。涉及的钱包余额同步加减，
// 账本和钱包表一起持久化。
func (s *Service) RecordTransaction(form TransactionForm, userID uint) Result {
	if errs := ValidateTransactionForm(form, false); len(errs) > 0 {
		return invalid(errs)
	}
	day, err := ledger.ParseDay(form.Date)
	if err != nil {
		return failure(http.StatusUnprocessableEntity, "交易日期不合法")
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	var items []ledger.LineItem
	switch form.Kind {
	case ledger.KindTransfer:
		amount := form.Total.Abs()
		// 先动余额：钱包不存在时直接返回，内存里的账本还没被碰过
		if t, err = ledger.NudgeBalance(t, form.FromAsset, amount.Neg()); err != nil {
			return mapError(err)
		}
		if t, err = ledger.NudgeBalance(t, form.ToAsset, amount); err != nil {
			return mapError(err)
		}
		items = []ledger.LineItem{
			ledger.NewLineItem(form.FromAsset, ledger.TransferCategory, form.Note, amount.Neg()),
			ledger.NewLineItem(form.ToAsset, ledger.TransferCategory, form.Note, amount),
		}
	default:
		price := signedPrice(form.Kind, form.Total)
		if t, err = ledger.NudgeBalance(t, form.Asset, price); err != nil {
			return mapError(err)
		}
		items = []ledger.LineItem{
			ledger.NewLineItem(form.Asset, form.Category, form.Note, price),
		}
	}

	l = ledger.Allocate(l, items, day)

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("记账成功", nil)
}

// EditTransaction 修改一条已有流水（可能改日期，编辑器负责挪桶）。
// 余额按「先冲掉旧值、再计入新值」两步调整，钱包改挂也能对上账。
func (s *Service) EditTransaction(form TransactionForm, userID uint) Result {
	if errs := ValidateTransactionForm(form, true); len(errs) > 0 {
		return invalid(errs)
	}
	day, err := ledger.ParseDay(form.Date)
	if err != nil {
		return failure(http.StatusUnprocessableEntity, "交易日期不合法")
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	// 先定位旧流水，拿到旧金额和旧钱包
	bucket := l.FindBucketByID(form.BucketID)
	if bucket == nil {
		return failure(http.StatusNotFound, "记录不存在")
	}
	var old *ledger.LineItem
	for i := range bucket.Body {
		if bucket.Body[i].UID == form.LineUID {
			old = &bucket.Body[i]
			break
		}
	}
	if old == nil {
		return failure(http.StatusNotFound, "记录不存在")
	}
	oldAsset, oldPrice := old.Asset, old.Price

	newPrice := signedPrice(form.Kind, form.Total)
	l, err = ledger.Edit(l, ledger.EditRequest{
		BucketID: form.BucketID,
		LineUID:  form.LineUID,
		Asset:    form.Asset,
		Category: form.Category,
		Item:     form.Note,
		Price:    newPrice,
		Day:      day,
	})
	if err != nil {
		return mapError(err)
	}

	if t, err = ledger.NudgeBalance(t, oldAsset, oldPrice.Neg()); err != nil {
		return mapError(err)
	}
	if t, err = ledger.NudgeBalance(t, form.Asset, newPrice); err != nil {
		return mapError(err)
	}

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("记录修改成功", nil)
}

// DeleteTransaction 删一条流水，并显式反转它对钱包余额的影响。
// 钱包已经被删掉的情况下只删流水（没有可反转的余额）。
func (s *Service) DeleteTransaction(bucketID, lineUID string, userID uint) Result {
	if bucketID == "" || lineUID == "" {
		return failure(http.StatusBadRequest, "要删除的记录不合法")
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	l, removed, err := ledger.DeleteLineItem(l, bucketID, lineUID)
	if err != nil {
		return mapError(err)
	}

	t, err = ledger.NudgeBalance(t, removed.Asset, removed.Price.Neg())
	if err != nil && !errors.Is(err, ledger.ErrAssetNotFound) {
		return mapError(err)
	}

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("记录删除成功", removed)
}

// ListTransactions 返回解密后的完整账本。
func (s *Service) ListTransactions(userID uint) Result {
	unlock := s.store.Lock(userID)
	defer unlock()

	l, _, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}
	return success("查询成功", l)
}
