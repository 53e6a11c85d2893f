package models

import "time"

// UserData 是每个用户一行的加密数据记录，持有两个互相独立加密的字段：
// 账本（Transaction）和钱包表（Assets）。两个字段整体读、整体写，
// 服务端从不做部分合并。
type UserData struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`

	Transaction string `gorm:"type:text"` // 加密后的账本 blob
	Assets      string `gorm:"type:text"` // 加密后的钱包表 blob

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
