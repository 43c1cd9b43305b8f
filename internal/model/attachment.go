package model

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

const TableNameAttachment = "attachment"

// Attachment mapped from table <attachment>
type Attachment struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_attachment_uid" json:"uid" form:"uid"`
	NoteID    int64      `gorm:"column:note_id;not null;index:idx_attachment_note" json:"noteId" form:"noteId"`
	FileName  string     `gorm:"column:file_name;not null" json:"fileName" form:"fileName"`
	FileKey   string     `gorm:"column:file_key;not null" json:"-"`
	MimeType  string     `gorm:"column:mime_type" json:"mimeType" form:"mimeType"`
	Size      int64      `gorm:"column:size" json:"size" form:"size"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Attachment's table name
func (*Attachment) TableName() string {
	return TableNameAttachment
}
