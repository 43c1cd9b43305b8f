package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameRelationship = "relationship"

// Relationship mapped from table <relationship>
type Relationship struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID          int64      `gorm:"column:uid;not null;index:idx_relationship_uid" json:"uid" form:"uid"`
	FromContact  int64      `gorm:"column:from_contact;not null;index:idx_relationship_from" json:"fromContact" form:"fromContact"`
	ToContact    int64      `gorm:"column:to_contact;not null;index:idx_relationship_to" json:"toContact" form:"toContact"`
	RelationType string     `gorm:"column:relation_type;not null" json:"relationType" form:"relationType"`
	CreatedAt    timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Relationship's table name
func (*Relationship) TableName() string {
	return TableNameRelationship
}
