package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// NotebookCreateRequest 创建笔记本请求参数
type NotebookCreateRequest struct {
	Name       string `json:"name" form:"name" binding:"required"`
	Summary    string `json:"summary" form:"summary"`
	Visibility string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// NotebookUpdateRequest 更新笔记本请求参数
type NotebookUpdateRequest struct {
	Name       *string `json:"name" form:"name"`
	Summary    *string `json:"summary" form:"summary"`
	Visibility *string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// NotebookDTO 笔记本数据传输对象
type NotebookDTO struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"`
	Name       string     `json:"name"`
	Summary    string     `json:"summary"`
	Visibility string     `json:"visibility"`
	Permission string     `json:"permission,omitempty"`
	CreatedAt  timex.Time `json:"createdAt"`
	UpdatedAt  timex.Time `json:"updatedAt"`
}
