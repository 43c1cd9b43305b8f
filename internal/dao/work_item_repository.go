package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// workItemRepository 实现 domain.WorkItemRepository 接口
type workItemRepository struct {
	dao *Dao
}

// NewWorkItemRepository 创建 WorkItemRepository 实例
func NewWorkItemRepository(dao *Dao) domain.WorkItemRepository {
	return &workItemRepository{dao: dao}
}

func (r *workItemRepository) workItem() *gorm.DB {
	return r.dao.useModel("WorkItem")
}

func (r *workItemRepository) toDomain(m *model.WorkItem) *domain.WorkItem {
	if m == nil {
		return nil
	}
	return &domain.WorkItem{
		ID:          m.ID,
		UID:         m.UID,
		Title:       m.Title,
		Description: m.Description,
		Status:      domain.WorkItemStatus(m.Status),
		DueAt:       toTimePtr(m.DueAt),
		Visibility:  domain.Visibility(m.Visibility),
		DeletedAt:   toTimePtr(m.DeletedAt),
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

func (r *workItemRepository) toModel(d *domain.WorkItem) *model.WorkItem {
	if d == nil {
		return nil
	}
	return &model.WorkItem{
		ID:          d.ID,
		UID:         d.UID,
		Title:       d.Title,
		Description: d.Description,
		Status:      string(d.Status),
		DueAt:       toTimexPtr(d.DueAt),
		Visibility:  string(d.Visibility),
		DeletedAt:   toTimexPtr(d.DeletedAt),
		CreatedAt:   timex.Time(d.CreatedAt),
		UpdatedAt:   timex.Time(d.UpdatedAt),
	}
}

func (r *workItemRepository) Create(ctx context.Context, item *domain.WorkItem) error {
	db := r.workItem()
	m := r.toModel(item)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

// GetByID 返回包括已软删除在内的行
func (r *workItemRepository) GetByID(ctx context.Context, id int64) (*domain.WorkItem, error) {
	db := r.workItem()
	var m model.WorkItem
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *workItemRepository) Update(ctx context.Context, item *domain.WorkItem) error {
	db := r.workItem()
	return db.WithContext(ctx).Model(&model.WorkItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":       item.Title,
			"description": item.Description,
			"status":      string(item.Status),
			"due_at":      toTimexPtr(item.DueAt),
			"visibility":  string(item.Visibility),
			"updated_at":  timex.Time(item.UpdatedAt),
		}).Error
}

func (r *workItemRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	db := r.workItem()
	return db.WithContext(ctx).Model(&model.WorkItem{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": timex.Time(at),
			"updated_at": timex.Time(at),
		}).Error
}

// ListByUID 按状态过滤，status 为空串时返回全部
func (r *workItemRepository) ListByUID(ctx context.Context, uid int64, status domain.WorkItemStatus, offset, limit int) ([]*domain.WorkItem, error) {
	db := r.workItem()
	q := db.WithContext(ctx).Where("uid = ? AND deleted_at IS NULL", uid)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var ms []*model.WorkItem
	err := q.Order("updated_at DESC").Offset(offset).Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.WorkItem, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *workItemRepository) CountByUID(ctx context.Context, uid int64, status domain.WorkItemStatus) (int64, error) {
	db := r.workItem()
	q := db.WithContext(ctx).Model(&model.WorkItem{}).
		Where("uid = ? AND deleted_at IS NULL", uid)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

var _ domain.WorkItemRepository = (*workItemRepository)(nil)
