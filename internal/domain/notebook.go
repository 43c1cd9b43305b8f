package domain

import (
	"context"
	"time"
)

// Notebook 笔记本领域模型
type Notebook struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"`
	Name       string     `json:"name"`
	Summary    string     `json:"summary"`
	Visibility Visibility `json:"visibility"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (n *Notebook) AsResource() *Resource {
	return &Resource{
		ID:         n.ID,
		Type:       ResourceTypeNotebook,
		OwnerUID:   n.UID,
		Visibility: n.Visibility,
		DeletedAt:  n.DeletedAt,
		Title:      n.Name,
		Body:       n.Summary,
	}
}

// NotebookRepository 笔记本持久化接口
type NotebookRepository interface {
	Create(ctx context.Context, nb *Notebook) error
	GetByID(ctx context.Context, id int64) (*Notebook, error)
	Update(ctx context.Context, nb *Notebook) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*Notebook, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}
