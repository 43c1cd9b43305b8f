package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// memoryRepository 实现 domain.MemoryRepository 接口
type memoryRepository struct {
	dao *Dao
}

// NewMemoryRepository 创建 MemoryRepository 实例
func NewMemoryRepository(dao *Dao) domain.MemoryRepository {
	return &memoryRepository{dao: dao}
}

func (r *memoryRepository) memory() *gorm.DB {
	return r.dao.useModel("Memory")
}

func (r *memoryRepository) toDomain(m *model.Memory) *domain.Memory {
	if m == nil {
		return nil
	}
	return &domain.Memory{
		ID:        m.ID,
		UID:       m.UID,
		Key:       m.Key,
		Content:   m.Content,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *memoryRepository) Create(ctx context.Context, memory *domain.Memory) error {
	db := r.memory()
	m := &model.Memory{
		UID:       memory.UID,
		Key:       memory.Key,
		Content:   memory.Content,
		CreatedAt: timex.Time(memory.CreatedAt),
		UpdatedAt: timex.Time(memory.UpdatedAt),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	memory.ID = m.ID
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.Memory, error) {
	db := r.memory()
	var m model.Memory
	if err := db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *memoryRepository) Update(ctx context.Context, memory *domain.Memory) error {
	db := r.memory()
	return db.WithContext(ctx).Model(&model.Memory{}).
		Where("id = ? AND uid = ?", memory.ID, memory.UID).
		Updates(map[string]interface{}{
			"key":        memory.Key,
			"content":    memory.Content,
			"updated_at": timex.Time(memory.UpdatedAt),
		}).Error
}

func (r *memoryRepository) Delete(ctx context.Context, id int64, uid int64) error {
	db := r.memory()
	return db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Memory{}).Error
}

func (r *memoryRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Memory, error) {
	db := r.memory()
	var ms []*model.Memory
	err := db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	ds := make([]*domain.Memory, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *memoryRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	db := r.memory()
	var count int64
	err := db.WithContext(ctx).Model(&model.Memory{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

var _ domain.MemoryRepository = (*memoryRepository)(nil)
