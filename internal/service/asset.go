package service

import (
	"net/http"
	"strings"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/ledger"
)

// ChartData 是统计接口返回的单个扇区：钱包名、百分比、展示颜色。
type ChartData struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// ListAssets 返回解密后的钱包表（首次访问会惰性种默认钱包）。
func (s *Service) ListAssets(userID uint) Result {
	unlock := s.store.Lock(userID)
	defer unlock()

	_, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}
	return success("查询成功", t)
}

// CreateAsset 新建钱包。名称重复返回 422。初始余额不为零时会
// 顺带在账本里记一条期初余额流水，保证「余额 = 流水之和」的不变式
// 从钱包诞生那一刻就成立。
func (s *Service) CreateAsset(form AssetForm, userID uint) Result {
	if errs := ValidateAssetForm(form, false); len(errs) > 0 {
		return invalid(errs)
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	if t.Find(form.Name) != -1 {
		return failure(http.StatusUnprocessableEntity, "钱包名称已存在")
	}

	color := form.Color
	if color == "" {
		color = ledger.RandomColor()
	}
	asset := ledger.Asset{
		Name:        strings.TrimSpace(form.Name),
		Group:       form.group(),
		Amount:      form.Nominal,
		Description: form.Description,
		Color:       color,
	}
	t = append(t, asset)

	if !form.Nominal.IsZero() {
		item := ledger.NewLineItem(asset.Name, "期初余额", "建立钱包时的初始资金", form.Nominal)
		l = ledger.Allocate(l, []ledger.LineItem{item}, ledger.Today())
	}

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("钱包创建成功", asset)
}

// UpdateAsset 修改钱包：改名会级联改写账本里所有引用（对账器负责），
// 余额被手动改过时补一条调整流水，让不变式继续成立而不是直接改数字。
func (s *Service) UpdateAsset(form AssetForm, userID uint) Result {
	if errs := ValidateAssetForm(form, true); len(errs) > 0 {
		return invalid(errs)
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	idx := t.Find(form.OldName)
	if idx == -1 {
		return failure(http.StatusNotFound, "钱包不存在")
	}

	newName := strings.TrimSpace(form.Name)
	renamed := newName != strings.TrimSpace(form.OldName)
	if renamed && t.Find(newName) != -1 {
		return failure(http.StatusConflict, "钱包名称已存在")
	}

	old := t[idx]
	t[idx] = ledger.Asset{
		Name:        newName,
		Group:       form.group(),
		Amount:      old.Amount,
		Description: form.Description,
		Color:       form.Color,
	}
	if t[idx].Color == "" {
		t[idx].Color = old.Color
	}

	if renamed {
		l = ledger.RenameAsset(l, form.OldName, newName)
	}

	// 表单里的余额和现存余额不一致，视为手动调整
	if diff := form.Nominal.Sub(old.Amount); !diff.IsZero() {
		item := ledger.NewLineItem(newName, "余额调整", "手动调整钱包余额", diff)
		l = ledger.Allocate(l, []ledger.LineItem{item}, ledger.Today())
		if t, err = ledger.NudgeBalance(t, newName, diff); err != nil {
			return mapError(err)
		}
	}

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("钱包修改成功", t[idx])
}

// DeleteAsset 删除钱包。option 决定引用它的流水是一起删掉还是改挂到
// 别的钱包；级联完成后全量重算一遍余额，保证挪过去的目标钱包也对账。
func (s *Service) DeleteAsset(name, option string, userID uint) Result {
	if strings.TrimSpace(name) == "" {
		return failure(http.StatusBadRequest, "钱包名称不合法")
	}
	mode, err := ledger.ParseDeleteMode(option)
	if err != nil {
		return failure(http.StatusUnprocessableEntity, "删除选项不合法")
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	l, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	idx := t.Find(name)
	if idx == -1 {
		return failure(http.StatusNotFound, "钱包不存在")
	}
	if mode.Move {
		if t.Find(mode.Target) == -1 {
			return failure(http.StatusNotFound, "目标钱包不存在")
		}
		if strings.TrimSpace(mode.Target) == strings.TrimSpace(name) {
			return failure(http.StatusUnprocessableEntity, "不能把流水挪到被删除的钱包")
		}
	}

	t = append(t[:idx], t[idx+1:]...)
	l = ledger.DeleteAssetCascade(l, name, mode)
	t = ledger.RecomputeFromLedger(l, t)

	if err := s.store.SaveUserData(userID, l, t); err != nil {
		return mapError(err)
	}
	return success("钱包删除成功", nil)
}

// GetProjection 计算每个钱包占总余额的百分比，供前端画环形图。
func (s *Service) GetProjection(userID uint) Result {
	unlock := s.store.Lock(userID)
	defer unlock()

	_, t, err := s.load(userID)
	if err != nil {
		return mapError(err)
	}

	chart := make([]ChartData, 0, len(t))
	for _, asset := range t {
		chart = append(chart, ChartData{
			Name:    asset.Name,
			Percent: ledger.PercentOf(t, asset),
			Color:   asset.Color,
		})
	}
	return success("查询成功", chart)
}
