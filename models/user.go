package models

import "time"

type User struct {
	ID           uint64    `gorm:"column:id;primary_key" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uk_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(80);not null" json:"-"`
	Nickname     string    `gorm:"column:nickname;type:varchar(40);not null;default:''" json:"nickname"`
	Avatar       string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Signature    string    `gorm:"column:signature;type:varchar(200);not null;default:''" json:"signature"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
