package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameUserShare = "user_share"

// UserShare mapped from table <user_share>
// 同一 (resource_type, resource_id, grantee_uid) 可能存在多行历史记录，
// 生效性由 expires_at 在查询时判定。
type UserShare struct {
	ID           int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	ResourceID   int64       `gorm:"column:resource_id;not null;index:idx_user_share_resource,priority:2" json:"resourceId" form:"resourceId"`
	ResourceType string      `gorm:"column:resource_type;not null;index:idx_user_share_resource,priority:1" json:"resourceType" form:"resourceType"`
	OwnerUID     int64       `gorm:"column:owner_uid;not null;index:idx_user_share_owner" json:"ownerUid" form:"ownerUid"`
	GranteeUID   int64       `gorm:"column:grantee_uid;not null;index:idx_user_share_grantee" json:"granteeUid" form:"granteeUid"`
	GranteeEmail string      `gorm:"column:grantee_email;not null" json:"granteeEmail" form:"granteeEmail"`
	Permission   string      `gorm:"column:permission;not null" json:"permission" form:"permission"`
	ExpiresAt    *timex.Time `gorm:"column:expires_at;type:datetime;default:NULL" json:"expiresAt" form:"expiresAt"`
	CreatedBy    int64       `gorm:"column:created_by;not null" json:"createdBy" form:"createdBy"`
	CreatedAt    timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt    timex.Time  `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName UserShare's table name
func (*UserShare) TableName() string {
	return TableNameUserShare
}
