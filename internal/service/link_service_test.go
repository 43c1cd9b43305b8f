package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func (f *shareFixture) createNoteLink(t *testing.T, params *dto.LinkCreateRequest) *dto.LinkShareDTO {
	t.Helper()
	if params == nil {
		params = &dto.LinkCreateRequest{ResourceType: "note", ResourceID: 1}
	}
	out, err := f.links.Create(context.Background(), ownerUID, params)
	require.NoError(t, err)
	return out
}

func TestLinkCreate(t *testing.T) {
	f := newShareFixture(t)
	out := f.createNoteLink(t, nil)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "read", out.Permission)
	assert.Equal(t, int64(0), out.ViewCount)
	assert.Equal(t, "https://hub.example.com/s/"+out.Token, out.URL)

	// 每个链接的 Token 独立生成
	other := f.createNoteLink(t, nil)
	assert.NotEqual(t, out.Token, other.Token)
}

func TestLinkCreateByNonOwner(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.links.Create(context.Background(), strangerUID, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLinkResolve(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		Permission:   "read_write",
	})

	view, err := f.links.Resolve(context.Background(), link.Token)
	require.NoError(t, err)
	assert.Equal(t, "note", view.ResourceType)
	assert.Equal(t, int64(1), view.ResourceID)
	assert.Equal(t, "meeting notes", view.Title)
	assert.Equal(t, "agenda", view.Body)
	assert.Equal(t, "read_write", view.Permission)
	assert.Equal(t, "owner@example.com", view.SharedBy)

	stored, err := f.linkRepo.GetByID(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

func TestLinkResolveUnknownToken(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.links.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkResolveSingleView(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		IsSingleView: true,
	})

	_, err := f.links.Resolve(context.Background(), link.Token)
	require.NoError(t, err)

	// 第二次解析：耗尽，而非不存在
	_, err = f.links.Resolve(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrShareGone)
}

func TestLinkResolveMaxViews(t *testing.T) {
	f := newShareFixture(t)
	maxViews := int64(2)
	link := f.createNoteLink(t, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		MaxViews:     &maxViews,
	})

	for i := 0; i < 2; i++ {
		_, err := f.links.Resolve(context.Background(), link.Token)
		require.NoError(t, err)
	}
	_, err := f.links.Resolve(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrShareGone)
}

// 并发解析 max_views=1 的链接：恰好一次成功，计数不超限
func TestLinkResolveConcurrentMaxViews(t *testing.T) {
	f := newShareFixture(t)
	maxViews := int64(1)
	link := f.createNoteLink(t, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		MaxViews:     &maxViews,
	})

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.links.Resolve(context.Background(), link.Token)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrShareGone)
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := f.linkRepo.GetByID(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

// revokeBeforeConsumeLinkRepo 在 Consume 执行前删除行，复现解析过程中
// 链接被撤销的交错时序
type revokeBeforeConsumeLinkRepo struct {
	*memLinkRepo
}

func (r *revokeBeforeConsumeLinkRepo) Consume(ctx context.Context, id int64) (bool, error) {
	if err := r.memLinkRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return r.memLinkRepo.Consume(ctx, id)
}

func TestLinkResolveRacesWithRevoke(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, nil)

	racing := NewLinkService(&revokeBeforeConsumeLinkRepo{f.linkRepo},
		f.userRepo, f.finders, f.engine, zap.NewNop(), nil)

	// 查找后、计数前被撤销的链接：对外是 NotFound，不是耗尽的 Gone
	_, err := racing.Resolve(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkRevoke(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, nil)

	require.NoError(t, f.links.Revoke(context.Background(), ownerUID, link.ID))

	// 撤销后的 Token 解析为 NotFound，而非 Gone
	_, err := f.links.Resolve(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkRevokeByNonOwner(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, nil)

	err := f.links.Revoke(context.Background(), strangerUID, link.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLinkResolveDeletedResource(t *testing.T) {
	f := newShareFixture(t)
	link := f.createNoteLink(t, nil)

	deletedAt := time.Now()
	f.resources[domain.ResourceTypeNote][1].DeletedAt = &deletedAt

	_, err := f.links.Resolve(context.Background(), link.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
