package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameDevSession = "dev_session"

// DevSession mapped from table <dev_session>
type DevSession struct {
	ID        int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64       `gorm:"column:uid;not null;index:idx_dev_session_uid" json:"uid" form:"uid"`
	Title     string      `gorm:"column:title;not null" json:"title" form:"title"`
	Summary   string      `gorm:"column:summary" json:"summary" form:"summary"`
	StartedAt timex.Time  `gorm:"column:started_at;type:datetime" json:"startedAt" form:"startedAt"`
	EndedAt   *timex.Time `gorm:"column:ended_at;type:datetime;default:NULL" json:"endedAt" form:"endedAt"`
	CreatedAt timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName DevSession's table name
func (*DevSession) TableName() string {
	return TableNameDevSession
}
