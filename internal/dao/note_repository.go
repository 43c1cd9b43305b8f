package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) note() *gorm.DB {
	return r.dao.useModel("Note")
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:         m.ID,
		UID:        m.UID,
		NotebookID: m.NotebookID,
		Title:      m.Title,
		Content:    m.Content,
		Visibility: domain.Visibility(m.Visibility),
		DeletedAt:  toTimePtr(m.DeletedAt),
		CreatedAt:  time.Time(m.CreatedAt),
		UpdatedAt:  time.Time(m.UpdatedAt),
	}
}

func (r *noteRepository) toModel(d *domain.Note) *model.Note {
	if d == nil {
		return nil
	}
	return &model.Note{
		ID:         d.ID,
		UID:        d.UID,
		NotebookID: d.NotebookID,
		Title:      d.Title,
		Content:    d.Content,
		Visibility: string(d.Visibility),
		DeletedAt:  toTimexPtr(d.DeletedAt),
		CreatedAt:  timex.Time(d.CreatedAt),
		UpdatedAt:  timex.Time(d.UpdatedAt),
	}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	db := r.note()
	m := r.toModel(note)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	note.ID = m.ID // 回填生成的 ID
	return nil
}

// GetByID 返回包括已软删除在内的行，授权判定需要看到删除状态
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	db := r.note()
	var m model.Note
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	db := r.note()
	return db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]interface{}{
			"notebook_id": note.NotebookID,
			"title":       note.Title,
			"content":     note.Content,
			"visibility":  string(note.Visibility),
			"updated_at":  timex.Time(note.UpdatedAt),
		}).Error
}

func (r *noteRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	db := r.note()
	return db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": timex.Time(at),
			"updated_at": timex.Time(at),
		}).Error
}

func (r *noteRepository) Restore(ctx context.Context, id int64) error {
	db := r.note()
	return db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"updated_at": timex.Now(),
		}).Error
}

func (r *noteRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Note, error) {
	db := r.note()
	var ms []*model.Note
	err := db.WithContext(ctx).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *noteRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	db := r.note()
	var count int64
	err := db.WithContext(ctx).Model(&model.Note{}).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Count(&count).Error
	return count, err
}

var _ domain.NoteRepository = (*noteRepository)(nil)
