package domain

import (
	"context"
	"time"
)

// Attachment 附件元数据（内容存本地文件系统，仅所有者可见）
type Attachment struct {
	ID        int64     `json:"id"`
	UID       int64     `json:"uid"`
	NoteID    int64     `json:"note_id"`
	FileName  string    `json:"file_name"`
	FileKey   string    `json:"-"` // 存储键，不对外暴露
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentRepository 附件元数据持久化接口
type AttachmentRepository interface {
	Create(ctx context.Context, att *Attachment) error
	GetByID(ctx context.Context, id int64, uid int64) (*Attachment, error)
	Delete(ctx context.Context, id int64, uid int64) error
	ListByNote(ctx context.Context, noteID int64, uid int64) ([]*Attachment, error)
}
