package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameLinkShare = "link_share"

// LinkShare mapped from table <link_share>
// 撤销即物理删除行，token 上有唯一索引。
type LinkShare struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	ResourceID   int64      `gorm:"column:resource_id;not null;index:idx_link_share_resource,priority:2" json:"resourceId" form:"resourceId"`
	ResourceType string     `gorm:"column:resource_type;not null;index:idx_link_share_resource,priority:1" json:"resourceType" form:"resourceType"`
	OwnerUID     int64      `gorm:"column:owner_uid;not null;index:idx_link_share_owner" json:"ownerUid" form:"ownerUid"`
	Token        string     `gorm:"column:token;not null;uniqueIndex:idx_link_share_token" json:"token" form:"token"`
	Permission   string     `gorm:"column:permission;not null" json:"permission" form:"permission"`
	IsSingleView bool       `gorm:"column:is_single_view;not null;default:false" json:"isSingleView" form:"isSingleView"`
	MaxViews     *int64     `gorm:"column:max_views;default:NULL" json:"maxViews" form:"maxViews"`
	ViewCount    int64      `gorm:"column:view_count;not null;default:0" json:"viewCount" form:"viewCount"`
	CreatedBy    int64      `gorm:"column:created_by;not null" json:"createdBy" form:"createdBy"`
	CreatedAt    timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName LinkShare's table name
func (*LinkShare) TableName() string {
	return TableNameLinkShare
}
