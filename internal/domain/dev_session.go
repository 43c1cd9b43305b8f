package domain

import (
	"context"
	"time"
)

// DevSession 开发会话记录（仅所有者可见）
type DevSession struct {
	ID        int64      `json:"id"`
	UID       int64      `json:"uid"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DevSessionRepository 开发会话持久化接口
type DevSessionRepository interface {
	Create(ctx context.Context, session *DevSession) error
	GetByID(ctx context.Context, id int64, uid int64) (*DevSession, error)
	Update(ctx context.Context, session *DevSession) error
	Delete(ctx context.Context, id int64, uid int64) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*DevSession, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}
