package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// MemoryCreateRequest 创建记忆条目请求参数
type MemoryCreateRequest struct {
	Key     string `json:"key" form:"key" binding:"required"`
	Content string `json:"content" form:"content" binding:"required"`
}

// MemoryUpdateRequest 更新记忆条目请求参数
type MemoryUpdateRequest struct {
	Key     *string `json:"key" form:"key"`
	Content *string `json:"content" form:"content"`
}

// MemoryDTO 记忆条目数据传输对象
type MemoryDTO struct {
	ID        int64      `json:"id"`
	Key       string     `json:"key"`
	Content   string     `json:"content"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
