package domain

import (
	"context"
	"time"
)

// User 用户领域模型
type User struct {
	UID       int64     `json:"uid"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Password  string    `json:"-"` // bcrypt 哈希
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRepository 用户持久化接口
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUID(ctx context.Context, uid int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, uid int64, passwordHash string) error
}
