package access

import (
	"context"
	"testing"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// fakeShareRepo 内存版 UserShareRepository，仅测试用
type fakeShareRepo struct {
	shares []*domain.UserShare
	nextID int64
}

func (f *fakeShareRepo) Create(ctx context.Context, share *domain.UserShare) error {
	for _, s := range f.shares {
		if s.ResourceType == share.ResourceType && s.ResourceID == share.ResourceID &&
			s.GranteeUID == share.GranteeUID && s.ActiveAt(time.Now()) {
			return domain.ErrAlreadyShared
		}
	}
	f.nextID++
	share.ID = f.nextID
	f.shares = append(f.shares, share)
	return nil
}

func (f *fakeShareRepo) GetByID(ctx context.Context, id int64) (*domain.UserShare, error) {
	for _, s := range f.shares {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeShareRepo) UpdatePermission(ctx context.Context, id int64, permission domain.SharePermission) error {
	for _, s := range f.shares {
		if s.ID == id {
			s.Permission = permission
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeShareRepo) Delete(ctx context.Context, id int64) error {
	for i, s := range f.shares {
		if s.ID == id {
			f.shares = append(f.shares[:i], f.shares[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeShareRepo) GetActive(ctx context.Context, resourceType domain.ResourceType, resourceID int64, granteeUID int64, now time.Time) (*domain.UserShare, error) {
	for _, s := range f.shares {
		if s.ResourceType == resourceType && s.ResourceID == resourceID &&
			s.GranteeUID == granteeUID && s.ActiveAt(now) {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeShareRepo) ListByResource(ctx context.Context, resourceType domain.ResourceType, resourceID int64) ([]*domain.UserShare, error) {
	var out []*domain.UserShare
	for _, s := range f.shares {
		if s.ResourceType == resourceType && s.ResourceID == resourceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShareRepo) ListActiveByGrantee(ctx context.Context, granteeUID int64, now time.Time) ([]*domain.UserShare, error) {
	var out []*domain.UserShare
	for _, s := range f.shares {
		if s.GranteeUID == granteeUID && s.ActiveAt(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

func finderFor(resources map[int64]*domain.Resource) domain.ResourceFinder {
	return func(ctx context.Context, id int64) (*domain.Resource, error) {
		if r, ok := resources[id]; ok {
			return r, nil
		}
		return nil, domain.ErrNotFound
	}
}

func newTestEngine(resources map[int64]*domain.Resource, shares *fakeShareRepo) *Engine {
	finders := map[domain.ResourceType]domain.ResourceFinder{
		domain.ResourceTypeNote: finderFor(resources),
	}
	return NewEngine(finders, shares)
}

func TestAuthorizeOwner(t *testing.T) {
	resources := map[int64]*domain.Resource{
		1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: 10, Visibility: domain.VisibilityPrivate},
	}
	e := newTestEngine(resources, &fakeShareRepo{})

	for _, op := range []Operation{OperationRead, OperationWrite, OperationDelete, OperationManageShares} {
		grant, err := e.Authorize(context.Background(), 10, domain.ResourceTypeNote, 1, op)
		assert.NoError(t, err, "op=%s", op)
		assert.True(t, grant.IsOwner)
		assert.Equal(t, domain.PermissionReadWrite, grant.Permission)
	}
}

func TestAuthorizeSoftDeletedResource(t *testing.T) {
	deletedAt := time.Now().Add(-time.Hour)
	resources := map[int64]*domain.Resource{
		1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: 10, Visibility: domain.VisibilityPublic, DeletedAt: &deletedAt},
	}
	e := newTestEngine(resources, &fakeShareRepo{})

	// 软删除的资源对所有人不可见，所有者也不例外
	_, err := e.Authorize(context.Background(), 10, domain.ResourceTypeNote, 1, OperationRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.Authorize(context.Background(), 20, domain.ResourceTypeNote, 1, OperationRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthorizeDecisionTable(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	resources := map[int64]*domain.Resource{
		1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: 10, Visibility: domain.VisibilityPrivate},
		2: {ID: 2, Type: domain.ResourceTypeNote, OwnerUID: 10, Visibility: domain.VisibilityPublic},
	}
	shares := &fakeShareRepo{shares: []*domain.UserShare{
		{ID: 1, ResourceID: 1, ResourceType: domain.ResourceTypeNote, OwnerUID: 10, GranteeUID: 20, Permission: domain.PermissionRead},
		{ID: 2, ResourceID: 2, ResourceType: domain.ResourceTypeNote, OwnerUID: 10, GranteeUID: 30, Permission: domain.PermissionReadWrite, ExpiresAt: &future},
		{ID: 3, ResourceID: 1, ResourceType: domain.ResourceTypeNote, OwnerUID: 10, GranteeUID: 40, Permission: domain.PermissionReadWrite, ExpiresAt: &expired},
	}}
	e := newTestEngine(resources, shares)

	tests := []struct {
		name     string
		uid      int64
		id       int64
		op       Operation
		wantErr  error
		wantPerm domain.SharePermission
	}{
		{"stranger reads private", 99, 1, OperationRead, domain.ErrNotFound, ""},
		{"stranger writes private", 99, 1, OperationWrite, domain.ErrNotFound, ""},
		{"stranger reads public", 99, 2, OperationRead, nil, domain.PermissionRead},
		{"stranger writes public", 99, 2, OperationWrite, domain.ErrNotFound, ""},
		{"stranger deletes public", 99, 2, OperationDelete, domain.ErrForbidden, ""},
		{"stranger manages shares on public", 99, 2, OperationManageShares, domain.ErrForbidden, ""},
		{"anonymous reads public", 0, 2, OperationRead, nil, domain.PermissionRead},
		{"anonymous reads private", 0, 1, OperationRead, domain.ErrNotFound, ""},
		{"read grantee reads", 20, 1, OperationRead, nil, domain.PermissionRead},
		{"read grantee writes", 20, 1, OperationWrite, domain.ErrForbidden, ""},
		{"read grantee deletes", 20, 1, OperationDelete, domain.ErrForbidden, ""},
		{"rw grantee writes", 30, 2, OperationWrite, nil, domain.PermissionReadWrite},
		{"expired grantee reads", 40, 1, OperationRead, domain.ErrNotFound, ""},
		{"unknown resource", 10, 42, OperationRead, domain.ErrNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grant, err := e.Authorize(context.Background(), tt.uid, domain.ResourceTypeNote, tt.id, tt.op)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPerm, grant.Permission)
		})
	}
}

func TestAuthorizePermissionUpgrade(t *testing.T) {
	resources := map[int64]*domain.Resource{
		1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: 10, Visibility: domain.VisibilityPrivate},
	}
	shares := &fakeShareRepo{}
	e := newTestEngine(resources, shares)
	ctx := context.Background()

	// 未分享时读取私有资源返回 not found
	_, err := e.Authorize(ctx, 20, domain.ResourceTypeNote, 1, OperationRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 创建只读分享后可读不可写
	err = shares.Create(ctx, &domain.UserShare{
		ResourceID: 1, ResourceType: domain.ResourceTypeNote,
		OwnerUID: 10, GranteeUID: 20, Permission: domain.PermissionRead,
	})
	assert.NoError(t, err)

	grant, err := e.Authorize(ctx, 20, domain.ResourceTypeNote, 1, OperationRead)
	assert.NoError(t, err)
	assert.Equal(t, domain.PermissionRead, grant.Permission)

	_, err = e.Authorize(ctx, 20, domain.ResourceTypeNote, 1, OperationWrite)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// 升级为读写后可写
	err = shares.UpdatePermission(ctx, 1, domain.PermissionReadWrite)
	assert.NoError(t, err)

	grant, err = e.Authorize(ctx, 20, domain.ResourceTypeNote, 1, OperationWrite)
	assert.NoError(t, err)
	assert.Equal(t, domain.PermissionReadWrite, grant.Permission)
}

func TestAuthorizeUnknownType(t *testing.T) {
	e := newTestEngine(map[int64]*domain.Resource{}, &fakeShareRepo{})
	_, err := e.Authorize(context.Background(), 10, domain.ResourceType("bogus"), 1, OperationRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// 私有资源对任意无分享主体的读取必须统一返回 not found，
// 不能通过返回值区分"资源不存在"与"无权访问"
func TestProperty_PrivateResourcesNotEnumerable(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("private reads deny uniformly with not found", prop.ForAll(
		func(resourceID int64, uid int64) bool {
			resources := map[int64]*domain.Resource{
				1: {ID: 1, Type: domain.ResourceTypeNote, OwnerUID: 1, Visibility: domain.VisibilityPrivate},
			}
			e := newTestEngine(resources, &fakeShareRepo{})

			if uid == 1 {
				return true // 所有者不在此性质范围内
			}
			_, err := e.Authorize(context.Background(), uid, domain.ResourceTypeNote, resourceID, OperationRead)
			return err == domain.ErrNotFound
		},
		gen.Int64Range(1, 100),
		gen.Int64Range(2, 1000),
	))

	properties.TestingRun(t)
}
