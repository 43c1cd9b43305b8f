package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameContact = "contact"

// Contact mapped from table <contact>
type Contact struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID        int64       `gorm:"column:uid;not null;index:idx_contact_uid" json:"uid" form:"uid"`
	Name       string      `gorm:"column:name;not null" json:"name" form:"name"`
	Email      string      `gorm:"column:email" json:"email" form:"email"`
	Phone      string      `gorm:"column:phone" json:"phone" form:"phone"`
	Company    string      `gorm:"column:company" json:"company" form:"company"`
	Notes      string      `gorm:"column:notes" json:"notes" form:"notes"`
	Visibility string      `gorm:"column:visibility;not null;default:private" json:"visibility" form:"visibility"`
	DeletedAt  *timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL" json:"deletedAt" form:"deletedAt"`
	CreatedAt  timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt  timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Contact's table name
func (*Contact) TableName() string {
	return TableNameContact
}
