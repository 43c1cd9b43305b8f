package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// relationshipRepository 实现 domain.RelationshipRepository 接口
type relationshipRepository struct {
	dao *Dao
}

// NewRelationshipRepository 创建 RelationshipRepository 实例
func NewRelationshipRepository(dao *Dao) domain.RelationshipRepository {
	return &relationshipRepository{dao: dao}
}

func (r *relationshipRepository) relationship() *gorm.DB {
	return r.dao.useModel("Relationship")
}

func (r *relationshipRepository) toDomain(m *model.Relationship) *domain.Relationship {
	if m == nil {
		return nil
	}
	return &domain.Relationship{
		ID:           m.ID,
		UID:          m.UID,
		FromContact:  m.FromContact,
		ToContact:    m.ToContact,
		RelationType: m.RelationType,
		CreatedAt:    time.Time(m.CreatedAt),
	}
}

func (r *relationshipRepository) Create(ctx context.Context, rel *domain.Relationship) error {
	db := r.relationship()
	m := &model.Relationship{
		UID:          rel.UID,
		FromContact:  rel.FromContact,
		ToContact:    rel.ToContact,
		RelationType: rel.RelationType,
		CreatedAt:    timex.Time(rel.CreatedAt),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	rel.ID = m.ID
	return nil
}

func (r *relationshipRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.Relationship, error) {
	db := r.relationship()
	var m model.Relationship
	if err := db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *relationshipRepository) Delete(ctx context.Context, id int64, uid int64) error {
	db := r.relationship()
	return db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Relationship{}).Error
}

// ListByContact 返回以指定联系人为任一端的关系
func (r *relationshipRepository) ListByContact(ctx context.Context, contactID int64, uid int64) ([]*domain.Relationship, error) {
	db := r.relationship()
	var ms []*model.Relationship
	err := db.WithContext(ctx).
		Where("uid = ? AND (from_contact = ? OR to_contact = ?)", uid, contactID, contactID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Relationship, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

var _ domain.RelationshipRepository = (*relationshipRepository)(nil)
