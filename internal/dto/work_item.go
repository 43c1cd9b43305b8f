package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// WorkItemCreateRequest 创建工作项请求参数
type WorkItemCreateRequest struct {
	Title       string      `json:"title" form:"title" binding:"required"`
	Description string      `json:"description" form:"description"`
	Status      string      `json:"status" form:"status" binding:"omitempty,oneof=open in_progress done"`
	DueAt       *timex.Time `json:"dueAt" form:"dueAt"`
	Visibility  string      `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// WorkItemUpdateRequest 更新工作项请求参数
type WorkItemUpdateRequest struct {
	Title       *string     `json:"title" form:"title"`
	Description *string     `json:"description" form:"description"`
	Status      *string     `json:"status" form:"status" binding:"omitempty,oneof=open in_progress done"`
	DueAt       *timex.Time `json:"dueAt" form:"dueAt"`
	Visibility  *string     `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// WorkItemListRequest 工作项列表请求参数
type WorkItemListRequest struct {
	Status string `json:"status" form:"status" binding:"omitempty,oneof=open in_progress done"`
}

// WorkItemDTO 工作项数据传输对象
type WorkItemDTO struct {
	ID          int64       `json:"id"`
	UID         int64       `json:"uid"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	DueAt       *timex.Time `json:"dueAt,omitempty"`
	Visibility  string      `json:"visibility"`
	Permission  string      `json:"permission,omitempty"`
	CreatedAt   timex.Time  `json:"createdAt"`
	UpdatedAt   timex.Time  `json:"updatedAt"`
}
