package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// linkShareRepository 实现 domain.LinkShareRepository 接口
type linkShareRepository struct {
	dao *Dao
}

// NewLinkShareRepository 创建 LinkShareRepository 实例
func NewLinkShareRepository(dao *Dao) domain.LinkShareRepository {
	return &linkShareRepository{dao: dao}
}

func (r *linkShareRepository) linkShare() *gorm.DB {
	return r.dao.useModel("LinkShare")
}

func (r *linkShareRepository) toDomain(m *model.LinkShare) *domain.LinkShare {
	if m == nil {
		return nil
	}
	return &domain.LinkShare{
		ID:           m.ID,
		ResourceID:   m.ResourceID,
		ResourceType: domain.ResourceType(m.ResourceType),
		OwnerUID:     m.OwnerUID,
		Token:        m.Token,
		Permission:   domain.SharePermission(m.Permission),
		IsSingleView: m.IsSingleView,
		MaxViews:     m.MaxViews,
		ViewCount:    m.ViewCount,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    time.Time(m.CreatedAt),
	}
}

func (r *linkShareRepository) toModel(d *domain.LinkShare) *model.LinkShare {
	if d == nil {
		return nil
	}
	return &model.LinkShare{
		ID:           d.ID,
		ResourceID:   d.ResourceID,
		ResourceType: string(d.ResourceType),
		OwnerUID:     d.OwnerUID,
		Token:        d.Token,
		Permission:   string(d.Permission),
		IsSingleView: d.IsSingleView,
		MaxViews:     d.MaxViews,
		ViewCount:    d.ViewCount,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    timex.Time(d.CreatedAt),
	}
}

func (r *linkShareRepository) Create(ctx context.Context, link *domain.LinkShare) error {
	db := r.linkShare()
	m := r.toModel(link)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	link.ID = m.ID // 回填生成的 ID
	return nil
}

func (r *linkShareRepository) GetByID(ctx context.Context, id int64) (*domain.LinkShare, error) {
	db := r.linkShare()
	var m model.LinkShare
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

// GetByToken 按 Token 查找；已撤销（删除）的行与从未存在的行同样返回 ErrNotFound
func (r *linkShareRepository) GetByToken(ctx context.Context, token string) (*domain.LinkShare, error) {
	db := r.linkShare()
	var m model.LinkShare
	if err := db.WithContext(ctx).Where("token = ?", token).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

// Consume 以单条带条件的 UPDATE 原子递增 view_count，仅当链接尚未耗尽。
// 并发请求中只有满足条件的那些会命中行，RowsAffected 为 0 即表示链接
// 已被耗尽（可能被并发请求抢先）。
func (r *linkShareRepository) Consume(ctx context.Context, id int64) (bool, error) {
	db := r.linkShare()
	res := db.WithContext(ctx).Model(&model.LinkShare{}).
		Where("id = ?", id).
		Where("(is_single_view AND view_count < 1)"+
			" OR (NOT is_single_view AND (max_views IS NULL OR view_count < max_views))").
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete 撤销链接（物理删除）
func (r *linkShareRepository) Delete(ctx context.Context, id int64) error {
	db := r.linkShare()
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LinkShare{}).Error
}

func (r *linkShareRepository) ListByResource(ctx context.Context, resourceType domain.ResourceType, resourceID int64) ([]*domain.LinkShare, error) {
	db := r.linkShare()
	var ms []*model.LinkShare
	err := db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", string(resourceType), resourceID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.LinkShare, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

var _ domain.LinkShareRepository = (*linkShareRepository)(nil)
