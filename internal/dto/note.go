package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	NotebookID int64  `json:"notebookId" form:"notebookId"`
	Title      string `json:"title" form:"title" binding:"required"`
	Content    string `json:"content" form:"content"`
	Visibility string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// NoteUpdateRequest 更新笔记请求参数
type NoteUpdateRequest struct {
	NotebookID *int64  `json:"notebookId" form:"notebookId"`
	Title      *string `json:"title" form:"title"`
	Content    *string `json:"content" form:"content"`
	Visibility *string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"`
	NotebookID int64      `json:"notebookId"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Visibility string     `json:"visibility"`
	Permission string     `json:"permission,omitempty"` // 请求主体的生效权限
	CreatedAt  timex.Time `json:"createdAt"`
	UpdatedAt  timex.Time `json:"updatedAt"`
}
