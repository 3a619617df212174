package model

import (
	"time"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

// Token is a signed access token handed out on login. It is never stored.
type Token struct {
	Value     string
	ExpiresAt time.Time
	TTL       time.Duration
	UserID    int64
}
