package domain

import (
	"context"
	"time"
)

// UserShare 用户分享领域模型：对单个资源、单个被分享人的显式授权
type UserShare struct {
	ID           int64           `json:"id"`
	ResourceID   int64           `json:"resource_id"`
	ResourceType ResourceType    `json:"resource_type"`
	OwnerUID     int64           `json:"owner_uid"`     // 资源所有者 // Resource owner
	GranteeUID   int64           `json:"grantee_uid"`   // 被分享人 // Grantee
	GranteeEmail string          `json:"grantee_email"` // 被分享人邮箱（创建时解析）
	Permission   SharePermission `json:"permission"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	CreatedBy    int64           `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ActiveAt reports whether the share grants access at the given instant.
// Expiry is lazy: expired rows stay in storage but never grant access.
// ActiveAt 报告分享在给定时刻是否生效。过期采用惰性判定：
// 过期的行保留在存储中，但不再授予任何访问。
func (s *UserShare) ActiveAt(now time.Time) bool {
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

// UserShareRepository 用户分享持久化接口
type UserShareRepository interface {
	// Create inserts the share; returns ErrAlreadyShared when an active
	// share for the same (resource, grantee) already exists. The existence
	// check and insert run in one transaction.
	// Create 插入分享；同一 (资源, 被分享人) 已有生效分享时返回
	// ErrAlreadyShared。存在性检查与插入在同一事务内完成。
	Create(ctx context.Context, share *UserShare) error
	GetByID(ctx context.Context, id int64) (*UserShare, error)
	UpdatePermission(ctx context.Context, id int64, permission SharePermission) error
	Delete(ctx context.Context, id int64) error
	// GetActive 返回指定 (资源, 被分享人) 在 now 时刻生效的分享，无则返回 ErrNotFound
	GetActive(ctx context.Context, resourceType ResourceType, resourceID int64, granteeUID int64, now time.Time) (*UserShare, error)
	// ListByResource 返回资源上的全部分享（含已过期，供所有者管理界面展示）
	ListByResource(ctx context.Context, resourceType ResourceType, resourceID int64) ([]*UserShare, error)
	// ListActiveByGrantee 返回分享给某用户的、now 时刻仍生效的分享
	ListActiveByGrantee(ctx context.Context, granteeUID int64, now time.Time) ([]*UserShare, error)
}
