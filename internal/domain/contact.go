package domain

import (
	"context"
	"time"
)

// Contact 联系人领域模型
type Contact struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Company    string     `json:"company"`
	Notes      string     `json:"notes"`
	Visibility Visibility `json:"visibility"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Contact) AsResource() *Resource {
	return &Resource{
		ID:         c.ID,
		Type:       ResourceTypeContact,
		OwnerUID:   c.UID,
		Visibility: c.Visibility,
		DeletedAt:  c.DeletedAt,
		Title:      c.Name,
		Body:       c.Notes,
	}
}

// ContactRepository 联系人持久化接口
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, id int64) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*Contact, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
}

// Relationship links two contacts of the same owner with a label such as
// "manager" or "spouse".
// Relationship 以标签（如 "manager"、"spouse"）关联同一所有者的两个联系人。
type Relationship struct {
	ID           int64     `json:"id"`
	UID          int64     `json:"uid"`
	FromContact  int64     `json:"from_contact"`
	ToContact    int64     `json:"to_contact"`
	RelationType string    `json:"relation_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// RelationshipRepository 联系人关系持久化接口
type RelationshipRepository interface {
	Create(ctx context.Context, rel *Relationship) error
	GetByID(ctx context.Context, id int64, uid int64) (*Relationship, error)
	Delete(ctx context.Context, id int64, uid int64) error
	ListByContact(ctx context.Context, contactID int64, uid int64) ([]*Relationship, error)
}
