package domain

import (
	"context"
	"time"
)

// ResourceType 可分享资源类型标签
type ResourceType string

const (
	ResourceTypeNote     ResourceType = "note"
	ResourceTypeNotebook ResourceType = "notebook"
	ResourceTypeContact  ResourceType = "contact"
	ResourceTypeWorkItem ResourceType = "work_item"
)

// IsValid 报告资源类型是否已知
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceTypeNote, ResourceTypeNotebook, ResourceTypeContact, ResourceTypeWorkItem:
		return true
	}
	return false
}

// UserShareable reports whether explicit per-user shares may be created for
// this type. Link shares are allowed for every valid type.
// UserShareable 报告该类型是否允许创建用户分享；链接分享对所有类型开放。
func (t ResourceType) UserShareable() bool {
	return t == ResourceTypeNote || t == ResourceTypeNotebook
}

// Visibility 资源可见性
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
	VisibilityPublic  Visibility = "public"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	}
	return false
}

// SharePermission 分享授予的权限级别
type SharePermission string

const (
	PermissionRead      SharePermission = "read"
	PermissionReadWrite SharePermission = "read_write"
)

func (p SharePermission) IsValid() bool {
	return p == PermissionRead || p == PermissionReadWrite
}

// CanWrite 报告该权限是否允许写操作
func (p SharePermission) CanWrite() bool {
	return p == PermissionReadWrite
}

// Resource is the common shape every shareable entity reduces to for
// authorization and link views: identity, owner, visibility, soft-delete
// state plus a displayable body.
// Resource 是所有可分享实体归一后的公共形态，用于授权决策与链接视图：
// 标识、所有者、可见性、软删除状态，以及可展示的内容。
type Resource struct {
	ID         int64
	Type       ResourceType
	OwnerUID   int64
	Visibility Visibility
	DeletedAt  *time.Time
	Title      string
	Body       string
}

// Deleted 报告资源是否已软删除
func (r *Resource) Deleted() bool {
	return r.DeletedAt != nil
}

// ResourceFinder loads the common shape for one resource type, including
// soft-deleted rows (the access engine needs to see them to answer
// not_found uniformly).
// ResourceFinder 按类型加载资源的公共形态，包含已软删除的行
// （访问引擎需要看到它们以统一返回 not_found）。
type ResourceFinder func(ctx context.Context, id int64) (*Resource, error)
