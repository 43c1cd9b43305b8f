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

type memMemoryRepo struct {
	mu       sync.Mutex
	nextID   int64
	memories map[int64]*domain.Memory
}

func newMemMemoryRepo() *memMemoryRepo {
	return &memMemoryRepo{nextID: 1, memories: make(map[int64]*domain.Memory)}
}

func (r *memMemoryRepo) Create(ctx context.Context, memory *domain.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	memory.ID = r.nextID
	r.nextID++
	cp := *memory
	r.memories[memory.ID] = &cp
	return nil
}

func (r *memMemoryRepo) GetByID(ctx context.Context, id int64, uid int64) (*domain.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memories[id]
	if !ok || m.UID != uid {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMemoryRepo) Update(ctx context.Context, memory *domain.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memories[memory.ID]
	if !ok {
		return domain.ErrNotFound
	}
	m.Key = memory.Key
	m.Content = memory.Content
	m.UpdatedAt = memory.UpdatedAt
	return nil
}

func (r *memMemoryRepo) Delete(ctx context.Context, id int64, uid int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.memories, id)
	return nil
}

func (r *memMemoryRepo) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]*domain.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Memory
	for _, m := range r.memories {
		if m.UID == uid {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMemoryRepo) CountByUID(ctx context.Context, uid int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, m := range r.memories {
		if m.UID == uid {
			count++
		}
	}
	return count, nil
}

func TestMemoryCreateAndGet(t *testing.T) {
	svc := NewMemoryService(newMemMemoryRepo(), zap.NewNop())

	created, err := svc.Create(context.Background(), ownerUID, &dto.MemoryCreateRequest{
		Key:     "favorite-editor",
		Content: "neovim",
	})
	require.NoError(t, err)
	assert.Equal(t, "favorite-editor", created.Key)
	assert.False(t, time.Time(created.CreatedAt).IsZero())

	got, err := svc.Get(context.Background(), ownerUID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "neovim", got.Content)
}

func TestMemoryIsolatedByUID(t *testing.T) {
	svc := NewMemoryService(newMemMemoryRepo(), zap.NewNop())

	created, err := svc.Create(context.Background(), ownerUID, &dto.MemoryCreateRequest{
		Key:     "k",
		Content: "v",
	})
	require.NoError(t, err)

	// 他人读、改、删一律 NotFound
	_, err = svc.Get(context.Background(), strangerUID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	content := "x"
	_, err = svc.Update(context.Background(), strangerUID, created.ID, &dto.MemoryUpdateRequest{Content: &content})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), strangerUID, created.ID), domain.ErrNotFound)
}

func TestMemoryUpdateAndList(t *testing.T) {
	svc := NewMemoryService(newMemMemoryRepo(), zap.NewNop())

	created, err := svc.Create(context.Background(), ownerUID, &dto.MemoryCreateRequest{
		Key:     "k",
		Content: "v",
	})
	require.NoError(t, err)

	content := "v2"
	out, err := svc.Update(context.Background(), ownerUID, created.ID, &dto.MemoryUpdateRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "v2", out.Content)
	assert.Equal(t, "k", out.Key)

	list, total, err := svc.List(context.Background(), ownerUID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), total)

	require.NoError(t, svc.Delete(context.Background(), ownerUID, created.ID))
	list, total, err = svc.List(context.Background(), ownerUID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)
}
