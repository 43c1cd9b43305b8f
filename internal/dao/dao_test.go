package dao

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDao 打开内存 sqlite 库。内存库随连接存亡，连接池必须收紧到
// 单连接，否则每个连接看到的是各自独立的空库。
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "hub_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return New(db, context.Background(), WithLogger(zap.NewNop()))
}

func newTestLink(isSingleView bool, maxViews *int64) *domain.LinkShare {
	return &domain.LinkShare{
		ResourceID:   1,
		ResourceType: domain.ResourceTypeNote,
		OwnerUID:     10,
		Token:        "tok-" + time.Now().Format("150405.000000000"),
		Permission:   domain.PermissionRead,
		IsSingleView: isSingleView,
		MaxViews:     maxViews,
		CreatedBy:    10,
		CreatedAt:    time.Now(),
	}
}

// 并发 Consume 同一 max_views=1 的链接：带条件的单条 UPDATE 保证
// 恰好一个调用命中行，计数不超限
func TestLinkShareConsumeConcurrent(t *testing.T) {
	repo := NewLinkShareRepository(newTestDao(t))

	maxViews := int64(1)
	link := newTestLink(false, &maxViews)
	require.NoError(t, repo.Create(context.Background(), link))

	const workers = 8
	var wg sync.WaitGroup
	results := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.Consume(context.Background(), link.ID)
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repo.GetByID(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
	assert.True(t, stored.Exhausted())
}

func TestLinkShareConsumeSingleView(t *testing.T) {
	repo := NewLinkShareRepository(newTestDao(t))

	link := newTestLink(true, nil)
	require.NoError(t, repo.Create(context.Background(), link))

	ok, err := repo.Consume(context.Background(), link.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Consume(context.Background(), link.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetByID(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

func TestLinkShareConsumeUnbounded(t *testing.T) {
	repo := NewLinkShareRepository(newTestDao(t))

	// max_views 为 NULL：不限次数
	link := newTestLink(false, nil)
	require.NoError(t, repo.Create(context.Background(), link))

	for i := 0; i < 3; i++ {
		ok, err := repo.Consume(context.Background(), link.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	stored, err := repo.GetByID(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.ViewCount)
}

func TestLinkShareRevoke(t *testing.T) {
	repo := NewLinkShareRepository(newTestDao(t))

	link := newTestLink(false, nil)
	require.NoError(t, repo.Create(context.Background(), link))
	require.NoError(t, repo.Delete(context.Background(), link.ID))

	_, err := repo.GetByToken(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 撤销后条件更新不再命中行
	ok, err := repo.Consume(context.Background(), link.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func newTestShare(granteeUID int64, expiresAt *time.Time) *domain.UserShare {
	now := time.Now()
	return &domain.UserShare{
		ResourceID:   1,
		ResourceType: domain.ResourceTypeNote,
		OwnerUID:     10,
		GranteeUID:   granteeUID,
		GranteeEmail: "grantee@example.com",
		Permission:   domain.PermissionRead,
		ExpiresAt:    expiresAt,
		CreatedBy:    10,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserShareCreateDuplicate(t *testing.T) {
	repo := NewUserShareRepository(newTestDao(t))

	require.NoError(t, repo.Create(context.Background(), newTestShare(20, nil)))

	// 同一 (资源, 被分享人) 的生效分享在事务内被拒绝
	err := repo.Create(context.Background(), newTestShare(20, nil))
	assert.ErrorIs(t, err, domain.ErrAlreadyShared)

	// 其他被分享人不受影响
	assert.NoError(t, repo.Create(context.Background(), newTestShare(21, nil)))
}

func TestUserShareLazyExpiry(t *testing.T) {
	repo := NewUserShareRepository(newTestDao(t))

	past := time.Now().Add(-time.Hour)
	expired := newTestShare(20, &past)
	require.NoError(t, repo.Create(context.Background(), expired))

	// 过期分享不再授权
	_, err := repo.GetActive(context.Background(), domain.ResourceTypeNote, 1, 20, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	active, err := repo.ListActiveByGrantee(context.Background(), 20, time.Now())
	require.NoError(t, err)
	assert.Empty(t, active)

	// 过期行保留在存储里，也不阻止重新分享
	fresh := newTestShare(20, nil)
	require.NoError(t, repo.Create(context.Background(), fresh))

	got, err := repo.GetActive(context.Background(), domain.ResourceTypeNote, 1, 20, time.Now())
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, got.ID)

	all, err := repo.ListByResource(context.Background(), domain.ResourceTypeNote, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserShareFutureExpiry(t *testing.T) {
	repo := NewUserShareRepository(newTestDao(t))

	future := time.Now().Add(time.Hour)
	share := newTestShare(20, &future)
	require.NoError(t, repo.Create(context.Background(), share))

	// 到期前生效，到期后失效，无需任何后台清理
	_, err := repo.GetActive(context.Background(), domain.ResourceTypeNote, 1, 20, time.Now())
	require.NoError(t, err)

	_, err = repo.GetActive(context.Background(), domain.ResourceTypeNote, 1, 20, time.Now().Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
