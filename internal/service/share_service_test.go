package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- in-memory repository fakes ----

type memUserRepo struct {
	mu    sync.Mutex
	users map[int64]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[int64]*domain.User)}
	for _, u := range users {
		r.users[u.UID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	user.UID = int64(len(r.users) + 1)
	r.users[user.UID] = user
	return nil
}

func (r *memUserRepo) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, uid int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = passwordHash
	return nil
}

type memShareRepo struct {
	mu     sync.Mutex
	nextID int64
	shares map[int64]*domain.UserShare
}

func newMemShareRepo() *memShareRepo {
	return &memShareRepo{nextID: 1, shares: make(map[int64]*domain.UserShare)}
}

func (r *memShareRepo) Create(ctx context.Context, share *domain.UserShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shares {
		if s.ResourceType == share.ResourceType && s.ResourceID == share.ResourceID &&
			s.GranteeUID == share.GranteeUID && s.ActiveAt(time.Now()) {
			return domain.ErrAlreadyShared
		}
	}
	share.ID = r.nextID
	r.nextID++
	r.shares[share.ID] = share
	return nil
}

func (r *memShareRepo) GetByID(ctx context.Context, id int64) (*domain.UserShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *memShareRepo) UpdatePermission(ctx context.Context, id int64, permission domain.SharePermission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Permission = permission
	return nil
}

func (r *memShareRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shares, id)
	return nil
}

func (r *memShareRepo) GetActive(ctx context.Context, resourceType domain.ResourceType, resourceID int64, granteeUID int64, now time.Time) (*domain.UserShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shares {
		if s.ResourceType == resourceType && s.ResourceID == resourceID &&
			s.GranteeUID == granteeUID && s.ActiveAt(now) {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memShareRepo) ListByResource(ctx context.Context, resourceType domain.ResourceType, resourceID int64) ([]*domain.UserShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.UserShare
	for _, s := range r.shares {
		if s.ResourceType == resourceType && s.ResourceID == resourceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShareRepo) ListActiveByGrantee(ctx context.Context, granteeUID int64, now time.Time) ([]*domain.UserShare, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.UserShare
	for _, s := range r.shares {
		if s.GranteeUID == granteeUID && s.ActiveAt(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memLinkRepo struct {
	mu     sync.Mutex
	nextID int64
	links  map[int64]*domain.LinkShare
}

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{nextID: 1, links: make(map[int64]*domain.LinkShare)}
}

func (r *memLinkRepo) Create(ctx context.Context, link *domain.LinkShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	link.ID = r.nextID
	r.nextID++
	r.links[link.ID] = link
	return nil
}

func (r *memLinkRepo) GetByID(ctx context.Context, id int64) (*domain.LinkShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memLinkRepo) GetByToken(ctx context.Context, token string) (*domain.LinkShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.links {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memLinkRepo) Consume(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok || l.Exhausted() {
		return false, nil
	}
	l.ViewCount++
	return true, nil
}

func (r *memLinkRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.links, id)
	return nil
}

func (r *memLinkRepo) ListByResource(ctx context.Context, resourceType domain.ResourceType, resourceID int64) ([]*domain.LinkShare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.LinkShare
	for _, l := range r.links {
		if l.ResourceType == resourceType && l.ResourceID == resourceID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- fixture ----

const (
	ownerUID    = int64(10)
	granteeUID  = int64(20)
	strangerUID = int64(99)
)

type shareFixture struct {
	resources map[domain.ResourceType]map[int64]*domain.Resource
	userRepo  *memUserRepo
	shareRepo *memShareRepo
	linkRepo  *memLinkRepo
	finders   map[domain.ResourceType]domain.ResourceFinder
	engine    *access.Engine
	shares    ShareService
	links     LinkService
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()

	f := &shareFixture{
		resources: map[domain.ResourceType]map[int64]*domain.Resource{
			domain.ResourceTypeNote: {
				1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: ownerUID,
					Visibility: domain.VisibilityPrivate, Title: "meeting notes", Body: "agenda"},
			},
			domain.ResourceTypeNotebook: {
				5: {ID: 5, Type: domain.ResourceTypeNotebook, OwnerUID: ownerUID,
					Visibility: domain.VisibilityPrivate, Title: "work"},
			},
		},
		userRepo: newMemUserRepo(
			&domain.User{UID: ownerUID, Email: "owner@example.com"},
			&domain.User{UID: granteeUID, Email: "grantee@example.com"},
			&domain.User{UID: strangerUID, Email: "stranger@example.com"},
		),
		shareRepo: newMemShareRepo(),
		linkRepo:  newMemLinkRepo(),
	}

	finders := make(map[domain.ResourceType]domain.ResourceFinder)
	for rt, byID := range f.resources {
		resources := byID
		finders[rt] = func(ctx context.Context, id int64) (*domain.Resource, error) {
			res, ok := resources[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return res, nil
		}
	}

	f.finders = finders
	f.engine = access.NewEngine(finders, f.shareRepo)
	f.shares = NewShareService(f.shareRepo, f.linkRepo, f.userRepo, finders, f.engine, zap.NewNop())
	f.links = NewLinkService(f.linkRepo, f.userRepo, finders, f.engine, zap.NewNop(),
		&ServiceConfig{Share: ShareServiceConfig{LinkTokenBytes: 32, PublicBaseURL: "https://hub.example.com/s"}})
	return f
}

func (f *shareFixture) createNoteShare(t *testing.T, permission string) *dto.UserShareDTO {
	t.Helper()
	out, err := f.shares.Create(context.Background(), ownerUID, &dto.ShareCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		GranteeEmail: "grantee@example.com",
		Permission:   permission,
	})
	require.NoError(t, err)
	return out
}

// ---- tests ----

func TestShareCreate(t *testing.T) {
	f := newShareFixture(t)

	out := f.createNoteShare(t, "read")
	assert.Equal(t, "note", out.ResourceType)
	assert.Equal(t, int64(1), out.ResourceID)
	assert.Equal(t, "grantee@example.com", out.GranteeEmail)
	assert.Equal(t, "read", out.Permission)

	// 被分享人现在可读
	grant, err := f.engine.Authorize(context.Background(), granteeUID, domain.ResourceTypeNote, 1, access.OperationRead)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionRead, grant.Permission)
}

func TestShareCreateDefaultsToRead(t *testing.T) {
	f := newShareFixture(t)
	out := f.createNoteShare(t, "")
	assert.Equal(t, "read", out.Permission)
}

func TestShareCreateDuplicate(t *testing.T) {
	f := newShareFixture(t)
	f.createNoteShare(t, "read")

	_, err := f.shares.Create(context.Background(), ownerUID, &dto.ShareCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		GranteeEmail: "grantee@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyShared)
}

func TestShareRevokeThenRecreate(t *testing.T) {
	f := newShareFixture(t)
	first := f.createNoteShare(t, "read")

	require.NoError(t, f.shares.Revoke(context.Background(), ownerUID, first.ID))

	// 撤销后被分享人立即失去访问
	_, err := f.engine.Authorize(context.Background(), granteeUID, domain.ResourceTypeNote, 1, access.OperationRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 撤销后可重新分享
	f.createNoteShare(t, "read_write")
}

func TestShareCreateToSelf(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.shares.Create(context.Background(), ownerUID, &dto.ShareCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		GranteeEmail: "owner@example.com",
	})
	assert.ErrorIs(t, err, ErrShareToSelf)
}

func TestShareCreateUnknownGrantee(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.shares.Create(context.Background(), ownerUID, &dto.ShareCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		GranteeEmail: "nobody@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestShareCreateByNonOwner(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.shares.Create(context.Background(), strangerUID, &dto.ShareCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
		GranteeEmail: "grantee@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestShareCreateNonShareableType(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.shares.Create(context.Background(), ownerUID, &dto.ShareCreateRequest{
		ResourceType: "contact",
		ResourceID:   1,
		GranteeEmail: "grantee@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShareUpdatePermission(t *testing.T) {
	f := newShareFixture(t)
	share := f.createNoteShare(t, "read")

	// read 分享不可写
	_, err := f.engine.Authorize(context.Background(), granteeUID, domain.ResourceTypeNote, 1, access.OperationWrite)
	require.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.shares.UpdatePermission(context.Background(), ownerUID, share.ID,
		&dto.ShareUpdateRequest{Permission: "read_write"})
	require.NoError(t, err)
	assert.Equal(t, "read_write", out.Permission)

	// 升级后立即可写
	grant, err := f.engine.Authorize(context.Background(), granteeUID, domain.ResourceTypeNote, 1, access.OperationWrite)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionReadWrite, grant.Permission)
}

func TestShareUpdateByNonOwner(t *testing.T) {
	f := newShareFixture(t)
	share := f.createNoteShare(t, "read")

	_, err := f.shares.UpdatePermission(context.Background(), strangerUID, share.ID,
		&dto.ShareUpdateRequest{Permission: "read_write"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.shares.Revoke(context.Background(), strangerUID, share.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestShareListForResource(t *testing.T) {
	f := newShareFixture(t)
	f.createNoteShare(t, "read")

	// 过期分享也要展示给所有者
	past := time.Now().Add(-time.Hour)
	require.NoError(t, f.shareRepo.Create(context.Background(), &domain.UserShare{
		ResourceID:   1,
		ResourceType: domain.ResourceTypeNote,
		OwnerUID:     ownerUID,
		GranteeUID:   strangerUID,
		GranteeEmail: "stranger@example.com",
		Permission:   domain.PermissionRead,
		ExpiresAt:    &past,
	}))

	_, err := f.links.Create(context.Background(), ownerUID, &dto.LinkCreateRequest{
		ResourceType: "note",
		ResourceID:   1,
	})
	require.NoError(t, err)

	out, err := f.shares.ListForResource(context.Background(), ownerUID, "note", 1)
	require.NoError(t, err)
	assert.Len(t, out.UserShares, 2)
	assert.Len(t, out.LinkShares, 1)

	_, err = f.shares.ListForResource(context.Background(), strangerUID, "note", 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestShareListSharedWithMe(t *testing.T) {
	f := newShareFixture(t)
	f.createNoteShare(t, "read")

	// 过期分享不出现在"分享给我的"里
	past := time.Now().Add(-time.Hour)
	require.NoError(t, f.shareRepo.Create(context.Background(), &domain.UserShare{
		ResourceID:   5,
		ResourceType: domain.ResourceTypeNotebook,
		OwnerUID:     ownerUID,
		GranteeUID:   granteeUID,
		GranteeEmail: "grantee@example.com",
		Permission:   domain.PermissionRead,
		ExpiresAt:    &past,
	}))

	out, err := f.shares.ListSharedWithMe(context.Background(), granteeUID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "note", out[0].ResourceType)
	assert.Equal(t, "meeting notes", out[0].Title)
	assert.Equal(t, "owner@example.com", out[0].SharedBy)
	assert.Equal(t, "read", out[0].Permission)
}

func TestShareListSharedWithMeCanceledCaller(t *testing.T) {
	f := newShareFixture(t)
	f.createNoteShare(t, "read")

	// singleflight 合并执行与调用方取消解耦：胜出请求的 context 被
	// 取消时，查询依然完成，不把取消错误扩散给等待者
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := f.shares.ListSharedWithMe(ctx, granteeUID)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestShareListSharedWithMeSkipsDeletedResource(t *testing.T) {
	f := newShareFixture(t)
	f.createNoteShare(t, "read")

	deletedAt := time.Now()
	f.resources[domain.ResourceTypeNote][1].DeletedAt = &deletedAt

	out, err := f.shares.ListSharedWithMe(context.Background(), granteeUID)
	require.NoError(t, err)
	assert.Empty(t, out)

	// 分享行还在：恢复资源后重新生效
	f.resources[domain.ResourceTypeNote][1].DeletedAt = nil
	out, err = f.shares.ListSharedWithMe(context.Background(), granteeUID)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
