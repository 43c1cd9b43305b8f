package domain

import (
	"context"
	"time"
)

// LinkShare 链接分享领域模型：凭 Token 匿名访问单个资源的授权
type LinkShare struct {
	ID           int64           `json:"id"`
	ResourceID   int64           `json:"resource_id"`
	ResourceType ResourceType    `json:"resource_type"`
	OwnerUID     int64           `json:"owner_uid"`
	Token        string          `json:"token"`
	Permission   SharePermission `json:"permission"`
	IsSingleView bool            `json:"is_single_view"`
	MaxViews     *int64          `json:"max_views,omitempty"`
	ViewCount    int64           `json:"view_count"`
	CreatedBy    int64           `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Exhausted reports whether the link has reached its view limit.
// is_single_view behaves as max_views = 1.
// Exhausted 报告链接是否已达到查看上限；is_single_view 等价于 max_views = 1。
func (l *LinkShare) Exhausted() bool {
	if l.IsSingleView && l.ViewCount >= 1 {
		return true
	}
	if l.MaxViews != nil && l.ViewCount >= *l.MaxViews {
		return true
	}
	return false
}

// LinkShareView 链接解析结果：资源内容、授予的权限、分享者
type LinkShareView struct {
	Resource   *Resource       `json:"resource"`
	Permission SharePermission `json:"permission"`
	SharedBy   string          `json:"sharedBy"`
}

// LinkShareRepository 链接分享持久化接口
type LinkShareRepository interface {
	Create(ctx context.Context, link *LinkShare) error
	GetByID(ctx context.Context, id int64) (*LinkShare, error)
	// GetByToken 按 Token 查找；不存在（含已撤销删除的行）返回 ErrNotFound
	GetByToken(ctx context.Context, token string) (*LinkShare, error)
	// Consume atomically increments view_count iff the link is not yet
	// exhausted, as a single conditional UPDATE. Returns false when the
	// guard failed (link exhausted, possibly by a concurrent consumer).
	// Consume 以单条带条件的 UPDATE 原子递增 view_count，仅当链接尚未耗尽。
	// 条件不满足（链接已耗尽，可能被并发请求耗尽）时返回 false。
	Consume(ctx context.Context, id int64) (bool, error)
	// Delete 撤销（物理删除）；撤销后的 Token 解析为 ErrNotFound 而非 ErrShareGone
	Delete(ctx context.Context, id int64) error
	ListByResource(ctx context.Context, resourceType ResourceType, resourceID int64) ([]*LinkShare, error)
}
