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

type memNoteRepo struct {
	mu     sync.Mutex
	nextID int64
	notes  map[int64]*domain.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{nextID: 1, notes: make(map[int64]*domain.Note)}
}

func (r *memNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = r.nextID
	r.nextID++
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *memNoteRepo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *memNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[note.ID]
	if !ok {
		return domain.ErrNotFound
	}
	n.NotebookID = note.NotebookID
	n.Title = note.Title
	n.Content = note.Content
	n.Visibility = note.Visibility
	n.UpdatedAt = note.UpdatedAt
	return nil
}

func (r *memNoteRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return domain.ErrNotFound
	}
	if n.DeletedAt == nil {
		t := at
		n.DeletedAt = &t
	}
	return nil
}

func (r *memNoteRepo) Restore(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.DeletedAt = nil
	return nil
}

func (r *memNoteRepo) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Note
	for _, n := range r.notes {
		if n.UID == uid && n.DeletedAt == nil {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memNoteRepo) CountByUID(ctx context.Context, uid int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notes {
		if n.UID == uid && n.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

type noteFixture struct {
	noteRepo  *memNoteRepo
	shareRepo *memShareRepo
	engine    *access.Engine
	notes     NoteService
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()

	f := &noteFixture{
		noteRepo:  newMemNoteRepo(),
		shareRepo: newMemShareRepo(),
	}

	finders := map[domain.ResourceType]domain.ResourceFinder{
		domain.ResourceTypeNote: func(ctx context.Context, id int64) (*domain.Resource, error) {
			n, err := f.noteRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return n.AsResource(), nil
		},
	}
	f.engine = access.NewEngine(finders, f.shareRepo)
	f.notes = NewNoteService(f.noteRepo, f.engine, zap.NewNop())
	return f
}

func (f *noteFixture) createNote(t *testing.T, visibility string) *dto.NoteDTO {
	t.Helper()
	out, err := f.notes.Create(context.Background(), ownerUID, &dto.NoteCreateRequest{
		Title:      "meeting notes",
		Content:    "agenda",
		Visibility: visibility,
	})
	require.NoError(t, err)
	return out
}

func (f *noteFixture) grantShare(t *testing.T, noteID int64, permission domain.SharePermission) {
	t.Helper()
	require.NoError(t, f.shareRepo.Create(context.Background(), &domain.UserShare{
		ResourceID:   noteID,
		ResourceType: domain.ResourceTypeNote,
		OwnerUID:     ownerUID,
		GranteeUID:   granteeUID,
		Permission:   permission,
	}))
}

func TestNoteCreateAndGet(t *testing.T) {
	f := newNoteFixture(t)

	created := f.createNote(t, "")
	assert.Equal(t, "private", created.Visibility)
	assert.Equal(t, "read_write", created.Permission)

	got, err := f.notes.Get(context.Background(), ownerUID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "meeting notes", got.Title)
	assert.Equal(t, "read_write", got.Permission)
}

func TestNoteGetPrivateByOthers(t *testing.T) {
	f := newNoteFixture(t)
	created := f.createNote(t, "private")

	// 陌生人与匿名用户都拿到 NotFound，不暴露资源存在性
	_, err := f.notes.Get(context.Background(), strangerUID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.notes.Get(context.Background(), 0, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteGetPublicAnonymous(t *testing.T) {
	f := newNoteFixture(t)
	created := f.createNote(t, "public")

	got, err := f.notes.Get(context.Background(), 0, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "read", got.Permission)
}

func TestNoteUpdateByGrantee(t *testing.T) {
	f := newNoteFixture(t)
	created := f.createNote(t, "private")
	f.grantShare(t, created.ID, domain.PermissionRead)

	// read 分享不可写
	title := "edited"
	_, err := f.notes.Update(context.Background(), granteeUID, created.ID, &dto.NoteUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f2 := newNoteFixture(t)
	created2 := f2.createNote(t, "private")
	f2.grantShare(t, created2.ID, domain.PermissionReadWrite)

	out, err := f2.notes.Update(context.Background(), granteeUID, created2.ID, &dto.NoteUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "edited", out.Title)

	// 可见性变更只允许所有者
	visibility := "public"
	_, err = f2.notes.Update(context.Background(), granteeUID, created2.ID, &dto.NoteUpdateRequest{Visibility: &visibility})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNoteDeleteOwnerOnly(t *testing.T) {
	f := newNoteFixture(t)
	created := f.createNote(t, "public")
	f.grantShare(t, created.ID, domain.PermissionReadWrite)

	// 公开资源、读写分享都不给删除权
	assert.ErrorIs(t, f.notes.Delete(context.Background(), granteeUID, created.ID), domain.ErrForbidden)
	assert.ErrorIs(t, f.notes.Delete(context.Background(), strangerUID, created.ID), domain.ErrForbidden)

	require.NoError(t, f.notes.Delete(context.Background(), ownerUID, created.ID))

	// 软删除后对所有人（含所有者）都是 NotFound
	_, err := f.notes.Get(context.Background(), ownerUID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.notes.Get(context.Background(), granteeUID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRestore(t *testing.T) {
	f := newNoteFixture(t)
	created := f.createNote(t, "private")
	f.grantShare(t, created.ID, domain.PermissionRead)

	require.NoError(t, f.notes.Delete(context.Background(), ownerUID, created.ID))

	// 非所有者恢复拿到 NotFound
	assert.ErrorIs(t, f.notes.Restore(context.Background(), granteeUID, created.ID), domain.ErrNotFound)

	require.NoError(t, f.notes.Restore(context.Background(), ownerUID, created.ID))

	// 恢复后原有分享重新生效
	got, err := f.notes.Get(context.Background(), granteeUID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "read", got.Permission)

	// 恢复未删除的笔记是幂等 no-op
	require.NoError(t, f.notes.Restore(context.Background(), ownerUID, created.ID))
}

func TestNoteList(t *testing.T) {
	f := newNoteFixture(t)
	first := f.createNote(t, "private")
	f.createNote(t, "public")
	require.NoError(t, f.notes.Delete(context.Background(), ownerUID, first.ID))

	out, total, err := f.notes.List(context.Background(), ownerUID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), total)

	out, total, err = f.notes.List(context.Background(), strangerUID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, total)
}
