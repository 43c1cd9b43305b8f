package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameWorkItem = "work_item"

// WorkItem mapped from table <work_item>
type WorkItem struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID         int64       `gorm:"column:uid;not null;index:idx_work_item_uid" json:"uid" form:"uid"`
	Title       string      `gorm:"column:title;not null" json:"title" form:"title"`
	Description string      `gorm:"column:description" json:"description" form:"description"`
	Status      string      `gorm:"column:status;not null;default:open;index:idx_work_item_status" json:"status" form:"status"`
	DueAt       *timex.Time `gorm:"column:due_at;type:datetime;default:NULL" json:"dueAt" form:"dueAt"`
	Visibility  string      `gorm:"column:visibility;not null;default:private" json:"visibility" form:"visibility"`
	DeletedAt   *timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL" json:"deletedAt" form:"deletedAt"`
	CreatedAt   timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName WorkItem's table name
func (*WorkItem) TableName() string {
	return TableNameWorkItem
}
