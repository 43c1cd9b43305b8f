package service

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/convert"

	"go.uber.org/zap"
)

// MemoryService 定义记忆条目业务服务接口。
// 记忆条目不可分享，全部操作按 uid 隔离，不经过访问决策引擎。
type MemoryService interface {
	Create(ctx context.Context, uid int64, params *dto.MemoryCreateRequest) (*dto.MemoryDTO, error)
	Get(ctx context.Context, uid int64, id int64) (*dto.MemoryDTO, error)
	Update(ctx context.Context, uid int64, id int64, params *dto.MemoryUpdateRequest) (*dto.MemoryDTO, error)
	Delete(ctx context.Context, uid int64, id int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]*dto.MemoryDTO, int64, error)
}

// memoryService 实现 MemoryService 接口
type memoryService struct {
	memoryRepo domain.MemoryRepository
	logger     *zap.Logger
}

// NewMemoryService 创建 MemoryService 实例
func NewMemoryService(memoryRepo domain.MemoryRepository, logger *zap.Logger) MemoryService {
	return &memoryService{
		memoryRepo: memoryRepo,
		logger:     logger,
	}
}

func (s *memoryService) domainToDTO(m *domain.Memory) *dto.MemoryDTO {
	if m == nil {
		return nil
	}
	out := &dto.MemoryDTO{}
	convert.StructAssign(m, out)
	return out
}

func (s *memoryService) Create(ctx context.Context, uid int64, params *dto.MemoryCreateRequest) (*dto.MemoryDTO, error) {
	now := time.Now()
	m := &domain.Memory{
		UID:       uid,
		Key:       params.Key,
		Content:   params.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.memoryRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.domainToDTO(m), nil
}

func (s *memoryService) Get(ctx context.Context, uid int64, id int64) (*dto.MemoryDTO, error) {
	m, err := s.memoryRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(m), nil
}

func (s *memoryService) Update(ctx context.Context, uid int64, id int64, params *dto.MemoryUpdateRequest) (*dto.MemoryDTO, error) {
	m, err := s.memoryRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if params.Key != nil {
		m.Key = *params.Key
	}
	if params.Content != nil {
		m.Content = *params.Content
	}
	m.UpdatedAt = time.Now()

	if err := s.memoryRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.domainToDTO(m), nil
}

func (s *memoryService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.memoryRepo.GetByID(ctx, id, uid); err != nil {
		return err
	}
	return s.memoryRepo.Delete(ctx, id, uid)
}

func (s *memoryService) List(ctx context.Context, uid int64, offset, limit int) ([]*dto.MemoryDTO, int64, error) {
	ms, err := s.memoryRepo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.memoryRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.MemoryDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, s.domainToDTO(m))
	}
	return out, total, nil
}
