package dao

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) user() *gorm.DB {
	return r.dao.useModel("User")
}

func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Email:     m.Email,
		Nickname:  m.Nickname,
		Password:  m.Password,
		Avatar:    m.Avatar,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *userRepository) toModel(d *domain.User) *model.User {
	if d == nil {
		return nil
	}
	return &model.User{
		UID:       d.UID,
		Email:     d.Email,
		Nickname:  d.Nickname,
		Password:  d.Password,
		Avatar:    d.Avatar,
		CreatedAt: timex.Time(d.CreatedAt),
		UpdatedAt: timex.Time(d.UpdatedAt),
	}
}

// Create 注册用户，邮箱重复时返回 ErrUserExists。
// 存在性检查与插入在同一事务内完成。
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	db := r.user()
	m := r.toModel(user)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).
			Where("email = ?", user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrUserExists
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}
	user.UID = m.UID // 回填生成的 UID
	return nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	db := r.user()
	var m model.User
	if err := db.WithContext(ctx).Where("uid = ?", uid).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db := r.user()
	var m model.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, uid int64, passwordHash string) error {
	db := r.user()
	return db.WithContext(ctx).Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": timex.Now(),
		}).Error
}

var _ domain.UserRepository = (*userRepository)(nil)
