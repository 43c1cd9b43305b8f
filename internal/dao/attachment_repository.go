package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// attachmentRepository 实现 domain.AttachmentRepository 接口
type attachmentRepository struct {
	dao *Dao
}

// NewAttachmentRepository 创建 AttachmentRepository 实例
func NewAttachmentRepository(dao *Dao) domain.AttachmentRepository {
	return &attachmentRepository{dao: dao}
}

func (r *attachmentRepository) attachment() *gorm.DB {
	return r.dao.useModel("Attachment")
}

func (r *attachmentRepository) toDomain(m *model.Attachment) *domain.Attachment {
	if m == nil {
		return nil
	}
	return &domain.Attachment{
		ID:        m.ID,
		UID:       m.UID,
		NoteID:    m.NoteID,
		FileName:  m.FileName,
		FileKey:   m.FileKey,
		MimeType:  m.MimeType,
		Size:      m.Size,
		CreatedAt: time.Time(m.CreatedAt),
	}
}

func (r *attachmentRepository) Create(ctx context.Context, att *domain.Attachment) error {
	db := r.attachment()
	m := &model.Attachment{
		UID:       att.UID,
		NoteID:    att.NoteID,
		FileName:  att.FileName,
		FileKey:   att.FileKey,
		MimeType:  att.MimeType,
		Size:      att.Size,
		CreatedAt: timex.Time(att.CreatedAt),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	att.ID = m.ID
	return nil
}

func (r *attachmentRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.Attachment, error) {
	db := r.attachment()
	var m model.Attachment
	if err := db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *attachmentRepository) Delete(ctx context.Context, id int64, uid int64) error {
	db := r.attachment()
	return db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Attachment{}).Error
}

func (r *attachmentRepository) ListByNote(ctx context.Context, noteID int64, uid int64) ([]*domain.Attachment, error) {
	db := r.attachment()
	var ms []*model.Attachment
	err := db.WithContext(ctx).
		Where("note_id = ? AND uid = ?", noteID, uid).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Attachment, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

var _ domain.AttachmentRepository = (*attachmentRepository)(nil)
