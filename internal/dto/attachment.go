package dto

import "github.com/evanhugh/assistant-hub-service/pkg/timex"

// AttachmentDTO 附件数据传输对象
type AttachmentDTO struct {
	ID        int64      `json:"id"`
	NoteID    int64      `json:"noteId"`
	FileName  string     `json:"fileName"`
	MimeType  string     `json:"mimeType"`
	Size      int64      `json:"size"`
	CreatedAt timex.Time `json:"createdAt"`
}
