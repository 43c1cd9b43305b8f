package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// ShareCreateRequest 创建用户分享请求参数
type ShareCreateRequest struct {
	ResourceType string      `json:"resourceType" form:"resourceType" binding:"required,oneof=note notebook"`
	ResourceID   int64       `json:"resourceId" form:"resourceId" binding:"required"`
	GranteeEmail string      `json:"granteeEmail" form:"granteeEmail" binding:"required,email"`
	Permission   string      `json:"permission" form:"permission" binding:"omitempty,oneof=read read_write"`
	ExpiresAt    *timex.Time `json:"expiresAt" form:"expiresAt"`
}

// ShareUpdateRequest 更新用户分享权限请求参数
type ShareUpdateRequest struct {
	Permission string `json:"permission" form:"permission" binding:"required,oneof=read read_write"`
}

// UserShareDTO 用户分享数据传输对象
type UserShareDTO struct {
	ID           int64       `json:"id"`
	ResourceType string      `json:"resourceType"`
	ResourceID   int64       `json:"resourceId"`
	GranteeEmail string      `json:"granteeEmail"`
	Permission   string      `json:"permission"`
	ExpiresAt    *timex.Time `json:"expiresAt,omitempty"`
	CreatedAt    timex.Time  `json:"createdAt"`
	UpdatedAt    timex.Time  `json:"updatedAt"`
}

// ResourceShareListDTO 资源上的分享列表（用户分享 + 链接分享）
type ResourceShareListDTO struct {
	UserShares []*UserShareDTO `json:"userShares"`
	LinkShares []*LinkShareDTO `json:"linkShares"`
}

// SharedResourceDTO "分享给我的"列表条目
type SharedResourceDTO struct {
	ResourceType string     `json:"resourceType"`
	ResourceID   int64      `json:"resourceId"`
	Title        string     `json:"title"`
	Permission   string     `json:"permission"`
	SharedBy     string     `json:"sharedBy"`
	SharedAt     timex.Time `json:"sharedAt"`
}
