package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// LinkCreateRequest 创建链接分享请求参数
type LinkCreateRequest struct {
	ResourceType string `json:"resourceType" form:"resourceType" binding:"required,oneof=note notebook contact work_item"`
	ResourceID   int64  `json:"resourceId" form:"resourceId" binding:"required"`
	Permission   string `json:"permission" form:"permission" binding:"omitempty,oneof=read read_write"`
	IsSingleView bool   `json:"isSingleView" form:"isSingleView"`
	MaxViews     *int64 `json:"maxViews" form:"maxViews" binding:"omitempty,gt=0"`
}

// LinkShareDTO 链接分享数据传输对象（仅所有者可见）
type LinkShareDTO struct {
	ID           int64      `json:"id"`
	ResourceType string     `json:"resourceType"`
	ResourceID   int64      `json:"resourceId"`
	Token        string     `json:"token"`
	URL          string     `json:"url,omitempty"`
	Permission   string     `json:"permission"`
	IsSingleView bool       `json:"isSingleView"`
	MaxViews     *int64     `json:"maxViews,omitempty"`
	ViewCount    int64      `json:"viewCount"`
	CreatedAt    timex.Time `json:"createdAt"`
}

// LinkViewDTO 链接解析结果：资源内容、授予的权限、分享者
type LinkViewDTO struct {
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	Permission   string `json:"permission"`
	SharedBy     string `json:"sharedBy"`
}
