package store

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/ledger"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/models"

	"gorm.io/gorm"
)

// Store 负责用户加密数据记录的读写：解密/重新加密账本和钱包表，
// 并通过 gorm 落到 user_data 表（每个用户一行、两个独立加密字段）。
// 同一个用户的操作必须整段持有 Lock(userID)，因为所有改账操作都是
// 「整体读出 -> 内存修改 -> 整体写回」，没有乐观并发控制，
// 不串行化的话两个并发请求会互相覆盖。
type Store struct {
	db     *gorm.DB
	secret string

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// New 构造 Store。secret 是服务端加密密钥（config.Security.EncryptionSecret）。
func New(db *gorm.DB, secret string) *Store {
	return &Store{
		db:     db,
		secret: secret,
		locks:  make(map[uint]*sync.Mutex),
	}
}

// Lock 获取某个用户的互斥锁，返回解锁函数。
//
//	unlock := s.Lock(userID)
//	defer unlock()
func (s *Store) Lock(userID uint) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// key 派生该用户的账本加密密钥。
func (s *Store) key(userID uint) []byte {
	return ledger.DeriveKey(s.secret, strconv.FormatUint(uint64(userID), 10))
}

// LoadUserData 取出用户的加密数据行。行不存在时惰性创建：
// 空账本 + 三个默认零余额钱包，两个字段各自加密后插入。
// 这是整个 Store 里唯一的隐式写入。
func (s *Store) LoadUserData(userID uint) (*models.UserData, error) {
	var ud models.UserData
	err := s.db.Where("user_id = ?", userID).First(&ud).Error
	if err == nil {
		return &ud, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load user data: %w", err)
	}

	key := s.key(userID)
	encLedger, err := ledger.EncryptJSON(ledger.Ledger{}, key)
	if err != nil {
		return nil, fmt.Errorf("seed ledger: %w", err)
	}
	encAssets, err := ledger.EncryptJSON(ledger.DefaultAssets(), key)
	if err != nil {
		return nil, fmt.Errorf("seed assets: %w", err)
	}

	ud = models.UserData{
		UserID:      userID,
		Transaction: encLedger,
		Assets:      encAssets,
	}
	if err := s.db.Create(&ud).Error; err != nil {
		return nil, fmt.Errorf("create user data: %w", err)
	}
	return &ud, nil
}

// Ledger 解密账本字段。空字段返回空账本；解不开返回 ErrCorruptedRecord。
func (s *Store) Ledger(ud *models.UserData) (ledger.Ledger, error) {
	l := ledger.Ledger{}
	if err := ledger.DecryptJSON(ud.Transaction, s.key(ud.UserID), &l); err != nil {
		return nil, fmt.Errorf("ledger blob: %w", err)
	}
	return l, nil
}

// Assets 解密钱包表字段。
func (s *Store) Assets(ud *models.UserData) (ledger.AssetTable, error) {
	t := ledger.AssetTable{}
	if err := ledger.DecryptJSON(ud.Assets, s.key(ud.UserID), &t); err != nil {
		return nil, fmt.Errorf("assets blob: %w", err)
	}
	return t, nil
}

// SaveLedger 重新加密并整体覆盖账本字段。
func (s *Store) SaveLedger(userID uint, l ledger.Ledger) error {
	enc, err := ledger.EncryptJSON(l, s.key(userID))
	if err != nil {
		return fmt.Errorf("encrypt ledger: %w", err)
	}
	return s.update(userID, map[string]any{"transaction": enc})
}

// SaveAssets 重新加密并整体覆盖钱包表字段。
func (s *Store) SaveAssets(userID uint, t ledger.AssetTable) error {
	enc, err := ledger.EncryptJSON(t, s.key(userID))
	if err != nil {
		return fmt.Errorf("encrypt assets: %w", err)
	}
	return s.update(userID, map[string]any{"assets": enc})
}

// SaveUserData 同一笔改动涉及账本和钱包表时必须走这里：
// 两个字段在一条 UPDATE 里一起落库，不允许只保存了一半。
func (s *Store) SaveUserData(userID uint, l ledger.Ledger, t ledger.AssetTable) error {
	key := s.key(userID)
	encLedger, err := ledger.EncryptJSON(l, key)
	if err != nil {
		return fmt.Errorf("encrypt ledger: %w", err)
	}
	encAssets, err := ledger.EncryptJSON(t, key)
	if err != nil {
		return fmt.Errorf("encrypt assets: %w", err)
	}
	return s.update(userID, map[string]any{
		"transaction": encLedger,
		"assets":      encAssets,
	})
}

func (s *Store) update(userID uint, patch map[string]any) error {
	res := s.db.Model(&models.UserData{}).Where("user_id = ?", userID).Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("save user data: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("save user data: user %d has no data row", userID)
	}
	return nil
}
