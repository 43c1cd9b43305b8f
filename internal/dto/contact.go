package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// ContactCreateRequest 创建联系人请求参数
type ContactCreateRequest struct {
	Name       string `json:"name" form:"name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" form:"phone"`
	Company    string `json:"company" form:"company"`
	Notes      string `json:"notes" form:"notes"`
	Visibility string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// ContactUpdateRequest 更新联系人请求参数
type ContactUpdateRequest struct {
	Name       *string `json:"name" form:"name"`
	Email      *string `json:"email" form:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" form:"phone"`
	Company    *string `json:"company" form:"company"`
	Notes      *string `json:"notes" form:"notes"`
	Visibility *string `json:"visibility" form:"visibility" binding:"omitempty,oneof=private shared public"`
}

// ContactDTO 联系人数据传输对象
type ContactDTO struct {
	ID         int64      `json:"id"`
	UID        int64      `json:"uid"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Company    string     `json:"company"`
	Notes      string     `json:"notes"`
	Visibility string     `json:"visibility"`
	Permission string     `json:"permission,omitempty"`
	CreatedAt  timex.Time `json:"createdAt"`
	UpdatedAt  timex.Time `json:"updatedAt"`
}

// RelationshipCreateRequest 创建联系人关系请求参数
type RelationshipCreateRequest struct {
	FromContact  int64  `json:"fromContact" form:"fromContact" binding:"required"`
	ToContact    int64  `json:"toContact" form:"toContact" binding:"required"`
	RelationType string `json:"relationType" form:"relationType" binding:"required"`
}

// RelationshipDTO 联系人关系数据传输对象
type RelationshipDTO struct {
	ID           int64      `json:"id"`
	FromContact  int64      `json:"fromContact"`
	ToContact    int64      `json:"toContact"`
	RelationType string     `json:"relationType"`
	CreatedAt    timex.Time `json:"createdAt"`
}
