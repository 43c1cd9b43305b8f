package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// DevSessionCreateRequest 创建开发会话请求参数
type DevSessionCreateRequest struct {
	Title     string      `json:"title" form:"title" binding:"required"`
	Summary   string      `json:"summary" form:"summary"`
	StartedAt *timex.Time `json:"startedAt" form:"startedAt"`
}

// DevSessionUpdateRequest 更新开发会话请求参数
type DevSessionUpdateRequest struct {
	Title   *string     `json:"title" form:"title"`
	Summary *string     `json:"summary" form:"summary"`
	EndedAt *timex.Time `json:"endedAt" form:"endedAt"`
}

// DevSessionDTO 开发会话数据传输对象
type DevSessionDTO struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	StartedAt timex.Time  `json:"startedAt"`
	EndedAt   *timex.Time `json:"endedAt,omitempty"`
	CreatedAt timex.Time  `json:"createdAt"`
	UpdatedAt timex.Time  `json:"updatedAt"`
}
