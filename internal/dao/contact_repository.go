package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// contactRepository 实现 domain.ContactRepository 接口
type contactRepository struct {
	dao *Dao
}

// NewContactRepository 创建 ContactRepository 实例
func NewContactRepository(dao *Dao) domain.ContactRepository {
	return &contactRepository{dao: dao}
}

func (r *contactRepository) contact() *gorm.DB {
	return r.dao.useModel("Contact")
}

func (r *contactRepository) toDomain(m *model.Contact) *domain.Contact {
	if m == nil {
		return nil
	}
	return &domain.Contact{
		ID:         m.ID,
		UID:        m.UID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Company:    m.Company,
		Notes:      m.Notes,
		Visibility: domain.Visibility(m.Visibility),
		DeletedAt:  toTimePtr(m.DeletedAt),
		CreatedAt:  time.Time(m.CreatedAt),
		UpdatedAt:  time.Time(m.UpdatedAt),
	}
}

func (r *contactRepository) toModel(d *domain.Contact) *model.Contact {
	if d == nil {
		return nil
	}
	return &model.Contact{
		ID:         d.ID,
		UID:        d.UID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Company:    d.Company,
		Notes:      d.Notes,
		Visibility: string(d.Visibility),
		DeletedAt:  toTimexPtr(d.DeletedAt),
		CreatedAt:  timex.Time(d.CreatedAt),
		UpdatedAt:  timex.Time(d.UpdatedAt),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	db := r.contact()
	m := r.toModel(contact)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	contact.ID = m.ID
	return nil
}

// GetByID 返回包括已软删除在内的行
func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	db := r.contact()
	var m model.Contact
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	db := r.contact()
	return db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"name":       contact.Name,
			"email":      contact.Email,
			"phone":      contact.Phone,
			"company":    contact.Company,
			"notes":      contact.Notes,
			"visibility": string(contact.Visibility),
			"updated_at": timex.Time(contact.UpdatedAt),
		}).Error
}

func (r *contactRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	db := r.contact()
	return db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": timex.Time(at),
			"updated_at": timex.Time(at),
		}).Error
}

func (r *contactRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Contact, error) {
	db := r.contact()
	var ms []*model.Contact
	err := db.WithContext(ctx).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Contact, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *contactRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	db := r.contact()
	var count int64
	err := db.WithContext(ctx).Model(&model.Contact{}).
		Where("uid = ? AND deleted_at IS NULL", uid).
		Count(&count).Error
	return count, err
}

var _ domain.ContactRepository = (*contactRepository)(nil)
