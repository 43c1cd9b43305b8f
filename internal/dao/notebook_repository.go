package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// notebookRepository 实现 domain.NotebookRepository 接口
type notebookRepository struct {
	dao *Dao
}

// NewNotebookRepository 创建 NotebookRepository 实例
func NewNotebookRepository(dao *Dao) domain.NotebookRepository {
	return &notebookRepository{dao: dao}
}

func (r *notebookRepository) notebook() *gorm.DB {
	return r.dao.useModel("Notebook")
}

func (r *notebookRepository) toDomain(m *model.Notebook) *domain.Notebook {
	if m == nil {
		return nil
	}
	return &domain.Notebook{
		ID:         m.ID,
		UID:        m.UID,
		Name:       m.Name,
		Summary:    m.Summary,
		Visibility: domain.Visibility(m.Visibility),
		DeletedAt:  toTimePtr(m.DeletedAt),
		CreatedAt:  time.Time(m.CreatedAt),
		UpdatedAt:  time.Time(m.UpdatedAt),
	}
}

func (r *notebookRepository) toModel(d *domain.Notebook) *model.Notebook {
	if d == nil {
		return nil
	}
	return &model.Notebook{
		ID:         d.ID,
		UID:        d.UID,
		Name:       d.Name,
		Summary:    d.Summary,
		Visibility: string(d.Visibility),
		DeletedAt:  toTimexPtr(d.DeletedAt),
		CreatedAt:  timex.Time(d.CreatedAt),
		UpdatedAt:  timex.Time(d.UpdatedAt),
	}
}

func (r *notebookRepository) Create(ctx context.Context, nb *domain.Notebook) error {
	db := r.notebook()
	m := r.toModel(nb)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	nb.ID = m.ID
	return nil
}

// GetByID 返回包括已软删除在内的行
func (r *notebookRepository) GetByID(ctx context.Context, id int64) (*domain.Notebook, error) {
	db := r.notebook()
	var m model.Notebook
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *notebookRepository) Update(ctx context.Context, nb *domain.Notebook) error {
	db := r.notebook()
	return db.WithContext(ctx).Model(&model.Notebook{}).
		Where("id = ?", nb.ID).
		Updates(map[string]interface{}{
			"name":       nb.Name,
			"summary":    nb.Summary,
			"visibility": string(nb.Visibility),
			"updated_at": timex.Time(nb.UpdatedAt),
		}).Error
}

func (r *notebookRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	db := r.notebook()
	return db.WithContext(ctx).Model(&model.Notebook{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": timex.Time(at),
			"updated_at": timex.Time(at),
		}).Error
}

func (r *notebookRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Notebook, error) {
	db := r.notebook()
	var ms []*model.Notebook
	err := db.WithContext(ctx).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Notebook, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *notebookRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	db := r.notebook()
	var count int64
	err := db.WithContext(ctx).Model(&model.Notebook{}).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Count(&count).Error
	return count, err
}

var _ domain.NotebookRepository = (*notebookRepository)(nil)
