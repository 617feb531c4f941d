package model

import "time"

// AppUserはツールにログインする利用者（生成データのusersとは別物）。
type AppUser struct {
	// UserIDは "<uuid>_<username>" 形式
	UserID       string `gorm:"primaryKey" json:"user_id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	TokenVersion int    `gorm:"not null;default:0" json:"token_version"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AppUser) TableName() string { return "app_users" }
