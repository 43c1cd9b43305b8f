package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// userShareRepository 实现 domain.UserShareRepository 接口
type userShareRepository struct {
	dao *Dao
}

// NewUserShareRepository 创建 UserShareRepository 实例
func NewUserShareRepository(dao *Dao) domain.UserShareRepository {
	return &userShareRepository{dao: dao}
}

func (r *userShareRepository) userShare() *gorm.DB {
	return r.dao.useModel("UserShare")
}

func (r *userShareRepository) toDomain(m *model.UserShare) *domain.UserShare {
	if m == nil {
		return nil
	}
	return &domain.UserShare{
		ID:           m.ID,
		ResourceID:   m.ResourceID,
		ResourceType: domain.ResourceType(m.ResourceType),
		OwnerUID:     m.OwnerUID,
		GranteeUID:   m.GranteeUID,
		GranteeEmail: m.GranteeEmail,
		Permission:   domain.SharePermission(m.Permission),
		ExpiresAt:    toTimePtr(m.ExpiresAt),
		CreatedBy:    m.CreatedBy,
		CreatedAt:    time.Time(m.CreatedAt),
		UpdatedAt:    time.Time(m.UpdatedAt),
	}
}

func (r *userShareRepository) toModel(d *domain.UserShare) *model.UserShare {
	if d == nil {
		return nil
	}
	return &model.UserShare{
		ID:           d.ID,
		ResourceID:   d.ResourceID,
		ResourceType: string(d.ResourceType),
		OwnerUID:     d.OwnerUID,
		GranteeUID:   d.GranteeUID,
		GranteeEmail: d.GranteeEmail,
		Permission:   string(d.Permission),
		ExpiresAt:    toTimexPtr(d.ExpiresAt),
		CreatedBy:    d.CreatedBy,
		CreatedAt:    timex.Time(d.CreatedAt),
		UpdatedAt:    timex.Time(d.UpdatedAt),
	}
}

// activeCond 生效分享的查询条件：未设置过期时间或过期时间在 now 之后
func activeCond(q *gorm.DB, now time.Time) *gorm.DB {
	return q.Where("expires_at IS NULL OR expires_at > ?", timex.Time(now))
}

// Create 插入分享；同一 (资源, 被分享人) 已有生效分享时返回 ErrAlreadyShared。
// 存在性检查与插入在同一事务内完成，避免并发重复授权。
func (r *userShareRepository) Create(ctx context.Context, share *domain.UserShare) error {
	db := r.userShare()
	m := r.toModel(share)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		q := tx.Model(&model.UserShare{}).
			Where("resource_type = ? AND resource_id = ? AND grantee_uid = ?",
				string(share.ResourceType), share.ResourceID, share.GranteeUID)
		if err := activeCond(q, time.Time(timex.Now())).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyShared
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}
	share.ID = m.ID // 回填生成的 ID
	return nil
}

func (r *userShareRepository) GetByID(ctx context.Context, id int64) (*domain.UserShare, error) {
	db := r.userShare()
	var m model.UserShare
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *userShareRepository) UpdatePermission(ctx context.Context, id int64, permission domain.SharePermission) error {
	db := r.userShare()
	return db.WithContext(ctx).Model(&model.UserShare{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"permission": string(permission),
			"updated_at": timex.Now(),
		}).Error
}

func (r *userShareRepository) Delete(ctx context.Context, id int64) error {
	db := r.userShare()
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserShare{}).Error
}

// GetActive 返回 now 时刻生效的分享，无则返回 ErrNotFound
func (r *userShareRepository) GetActive(ctx context.Context, resourceType domain.ResourceType, resourceID int64, granteeUID int64, now time.Time) (*domain.UserShare, error) {
	db := r.userShare()
	var m model.UserShare
	q := db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ? AND grantee_uid = ?",
			string(resourceType), resourceID, granteeUID)
	if err := activeCond(q, now).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

// ListByResource 返回资源上的全部分享，含已过期的
func (r *userShareRepository) ListByResource(ctx context.Context, resourceType domain.ResourceType, resourceID int64) ([]*domain.UserShare, error) {
	db := r.userShare()
	var ms []*model.UserShare
	err := db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", string(resourceType), resourceID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.UserShare, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

// ListActiveByGrantee 返回分享给某用户的、now 时刻仍生效的分享
func (r *userShareRepository) ListActiveByGrantee(ctx context.Context, granteeUID int64, now time.Time) ([]*domain.UserShare, error) {
	db := r.userShare()
	var ms []*model.UserShare
	q := db.WithContext(ctx).Where("grantee_uid = ?", granteeUID)
	err := activeCond(q, now).Order("id DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.UserShare, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

var _ domain.UserShareRepository = (*userShareRepository)(nil)
