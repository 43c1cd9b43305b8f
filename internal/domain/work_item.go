package domain

import (
	"context"
	"time"
)

// WorkItemStatus 工作项状态
type WorkItemStatus string

const (
	WorkItemStatusOpen       WorkItemStatus = "open"
	WorkItemStatusInProgress WorkItemStatus = "in_progress"
	WorkItemStatusDone       WorkItemStatus = "done"
)

func (s WorkItemStatus) IsValid() bool {
	switch s {
	case WorkItemStatusOpen, WorkItemStatusInProgress, WorkItemStatusDone:
		return true
	}
	return false
}

// WorkItem 工作项领域模型
type WorkItem struct {
	ID          int64          `json:"id"`
	UID         int64          `json:"uid"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      WorkItemStatus `json:"status"`
	DueAt       *time.Time     `json:"due_at,omitempty"`
	Visibility  Visibility     `json:"visibility"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (w *WorkItem) AsResource() *Resource {
	return &Resource{
		ID:         w.ID,
		Type:       ResourceTypeWorkItem,
		OwnerUID:   w.UID,
		Visibility: w.Visibility,
		DeletedAt:  w.DeletedAt,
		Title:      w.Title,
		Body:       w.Description,
	}
}

// WorkItemRepository 工作项持久化接口
type WorkItemRepository interface {
	Create(ctx context.Context, item *WorkItem) error
	GetByID(ctx context.Context, id int64) (*WorkItem, error)
	Update(ctx context.Context, item *WorkItem) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	ListByUID(ctx context.Context, uid int64, status WorkItemStatus, offset, limit int) ([]*WorkItem, error)
	CountByUID(ctx context.Context, uid int64, status WorkItemStatus) (int64, error)
}
