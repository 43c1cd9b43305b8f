package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameNotebook = "notebook"

// Notebook mapped from table <notebook>
type Notebook struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID        int64       `gorm:"column:uid;not null;index:idx_notebook_uid" json:"uid" form:"uid"`
	Name       string      `gorm:"column:name;not null" json:"name" form:"name"`
	Summary    string      `gorm:"column:summary" json:"summary" form:"summary"`
	Visibility string      `gorm:"column:visibility;not null;default:private" json:"visibility" form:"visibility"`
	DeletedAt  *timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL" json:"deletedAt" form:"deletedAt"`
	CreatedAt  timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt  timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Notebook's table name
func (*Notebook) TableName() string {
	return TableNameNotebook
}
