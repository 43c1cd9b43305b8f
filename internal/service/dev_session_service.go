package service

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/convert"

	"go.uber.org/zap"
)

// DevSessionService 定义开发会话业务服务接口。
// 开发会话不可分享，全部操作按 uid 隔离。
type DevSessionService interface {
	Create(ctx context.Context, uid int64, params *dto.DevSessionCreateRequest) (*dto.DevSessionDTO, error)
	Get(ctx context.Context, uid int64, id int64) (*dto.DevSessionDTO, error)
	Update(ctx context.Context, uid int64, id int64, params *dto.DevSessionUpdateRequest) (*dto.DevSessionDTO, error)
	Delete(ctx context.Context, uid int64, id int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]*dto.DevSessionDTO, int64, error)
}

// devSessionService 实现 DevSessionService 接口
type devSessionService struct {
	sessionRepo domain.DevSessionRepository
	logger      *zap.Logger
}

// NewDevSessionService 创建 DevSessionService 实例
func NewDevSessionService(sessionRepo domain.DevSessionRepository, logger *zap.Logger) DevSessionService {
	return &devSessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *devSessionService) domainToDTO(d *domain.DevSession) *dto.DevSessionDTO {
	if d == nil {
		return nil
	}
	out := &dto.DevSessionDTO{}
	convert.StructAssign(d, out)
	return out
}

func (s *devSessionService) Create(ctx context.Context, uid int64, params *dto.DevSessionCreateRequest) (*dto.DevSessionDTO, error) {
	now := time.Now()
	startedAt := now
	if params.StartedAt != nil {
		startedAt = time.Time(*params.StartedAt)
	}
	d := &domain.DevSession{
		UID:       uid,
		Title:     params.Title,
		Summary:   params.Summary,
		StartedAt: startedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return s.domainToDTO(d), nil
}

func (s *devSessionService) Get(ctx context.Context, uid int64, id int64) (*dto.DevSessionDTO, error) {
	d, err := s.sessionRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(d), nil
}

func (s *devSessionService) Update(ctx context.Context, uid int64, id int64, params *dto.DevSessionUpdateRequest) (*dto.DevSessionDTO, error) {
	d, err := s.sessionRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if params.Title != nil {
		d.Title = *params.Title
	}
	if params.Summary != nil {
		d.Summary = *params.Summary
	}
	if params.EndedAt != nil {
		t := time.Time(*params.EndedAt)
		d.EndedAt = &t
	}
	d.UpdatedAt = time.Now()

	if err := s.sessionRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return s.domainToDTO(d), nil
}

func (s *devSessionService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.sessionRepo.GetByID(ctx, id, uid); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, id, uid)
}

func (s *devSessionService) List(ctx context.Context, uid int64, offset, limit int) ([]*dto.DevSessionDTO, int64, error) {
	ds, err := s.sessionRepo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.sessionRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.DevSessionDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, s.domainToDTO(d))
	}
	return out, total, nil
}
