package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid" form:"uid"`
	Email     string     `gorm:"column:email;not null;uniqueIndex:idx_user_email" json:"email" form:"email"`
	Nickname  string     `gorm:"column:nickname" json:"nickname" form:"nickname"`
	Password  string     `gorm:"column:password;not null" json:"-"`
	Avatar    string     `gorm:"column:avatar" json:"avatar" form:"avatar"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
