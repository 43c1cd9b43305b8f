package domain

import (
	"context"
	"time"
)

// Memory 记忆条目领域模型（键值式个人备忘，仅所有者可见）
type Memory struct {
	ID        int64     `json:"id"`
	UID       int64     `json:"uid"`
	Key       string    `json:"key"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemoryRepository 记忆条目持久化接口
type MemoryRepository interface {
	Create(ctx context.Context, memory *Memory) error
	GetByID(ctx context.Context, id int64, uid int64) (*Memory, error)
	Update(ctx context.Context, memory *Memory) error
	Delete(ctx context.Context, id int64, uid int64) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*Memory, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}
