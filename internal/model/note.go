package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameNote = "note"

// Note mapped from table <note>
type Note struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID        int64       `gorm:"column:uid;not null;index:idx_note_uid" json:"uid" form:"uid"`
	NotebookID int64       `gorm:"column:notebook_id;index:idx_note_notebook" json:"notebookId" form:"notebookId"`
	Title      string      `gorm:"column:title;not null" json:"title" form:"title"`
	Content    string      `gorm:"column:content" json:"content" form:"content"`
	Visibility string      `gorm:"column:visibility;not null;default:private" json:"visibility" form:"visibility"`
	DeletedAt  *timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL" json:"deletedAt" form:"deletedAt"`
	CreatedAt  timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt  timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
