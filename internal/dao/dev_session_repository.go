package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// devSessionRepository 实现 domain.DevSessionRepository 接口
type devSessionRepository struct {
	dao *Dao
}

// NewDevSessionRepository 创建 DevSessionRepository 实例
func NewDevSessionRepository(dao *Dao) domain.DevSessionRepository {
	return &devSessionRepository{dao: dao}
}

func (r *devSessionRepository) devSession() *gorm.DB {
	return r.dao.useModel("DevSession")
}

func (r *devSessionRepository) toDomain(m *model.DevSession) *domain.DevSession {
	if m == nil {
		return nil
	}
	return &domain.DevSession{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Summary:   m.Summary,
		StartedAt: time.Time(m.StartedAt),
		EndedAt:   toTimePtr(m.EndedAt),
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *devSessionRepository) Create(ctx context.Context, session *domain.DevSession) error {
	db := r.devSession()
	m := &model.DevSession{
		UID:       session.UID,
		Title:     session.Title,
		Summary:   session.Summary,
		StartedAt: timex.Time(session.StartedAt),
		EndedAt:   toTimexPtr(session.EndedAt),
		CreatedAt: timex.Time(session.CreatedAt),
		UpdatedAt: timex.Time(session.UpdatedAt),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	session.ID = m.ID
	return nil
}

func (r *devSessionRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.DevSession, error) {
	db := r.devSession()
	var m model.DevSession
	if err := db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *devSessionRepository) Update(ctx context.Context, session *domain.DevSession) error {
	db := r.devSession()
	return db.WithContext(ctx).Model(&model.DevSession{}).
		Where("id = ? AND uid = ?", session.ID, session.UID).
		Updates(map[string]interface{}{
			"title":      session.Title,
			"summary":    session.Summary,
			"ended_at":   toTimexPtr(session.EndedAt),
			"updated_at": timex.Time(session.UpdatedAt),
		}).Error
}

func (r *devSessionRepository) Delete(ctx context.Context, id int64, uid int64) error {
	db := r.devSession()
	return db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.DevSession{}).Error
}

func (r *devSessionRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.DevSession, error) {
	db := r.devSession()
	var ms []*model.DevSession
	err := db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("started_at DESC").
		Offset(offset).Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.DevSession, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *devSessionRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	db := r.devSession()
	var count int64
	err := db.WithContext(ctx).Model(&model.DevSession{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

var _ domain.DevSessionRepository = (*devSessionRepository)(nil)
