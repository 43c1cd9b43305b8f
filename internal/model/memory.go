package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameMemory = "memory"

// Memory mapped from table <memory>
type Memory struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_memory_uid_key,priority:1" json:"uid" form:"uid"`
	Key       string     `gorm:"column:key;not null;index:idx_memory_uid_key,priority:2" json:"key" form:"key"`
	Content   string     `gorm:"column:content" json:"content" form:"content"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Memory's table name
func (*Memory) TableName() string {
	return TableNameMemory
}
