package domain

import (
	"context"
	"time"
)

// Note 笔记领域模型
type Note struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"` // 所有者 // Owner
	NotebookID int64      `json:"notebook_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Visibility Visibility `json:"visibility"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AsResource 归一为公共资源形态
func (n *Note) AsResource() *Resource {
	return &Resource{
		ID:         n.ID,
		Type:       ResourceTypeNote,
		OwnerUID:   n.UID,
		Visibility: n.Visibility,
		DeletedAt:  n.DeletedAt,
		Title:      n.Title,
		Body:       n.Content,
	}
}

// NoteRepository 笔记持久化接口
// GetByID 返回包括已软删除在内的行；列表接口只返回未删除的行。
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, id int64) (*Note, error)
	Update(ctx context.Context, note *Note) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Restore(ctx context.Context, id int64) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*Note, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}
