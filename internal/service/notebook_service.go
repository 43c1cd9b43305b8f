package service

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"go.uber.org/zap"
)

// NotebookService 定义笔记本业务服务接口
type NotebookService interface {
	Create(ctx context.Context, uid int64, params *dto.NotebookCreateRequest) (*dto.NotebookDTO, error)
	Get(ctx context.Context, uid int64, id int64) (*dto.NotebookDTO, error)
	Update(ctx context.Context, uid int64, id int64, params *dto.NotebookUpdateRequest) (*dto.NotebookDTO, error)
	Delete(ctx context.Context, uid int64, id int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]*dto.NotebookDTO, int64, error)
}

// notebookService 实现 NotebookService 接口
type notebookService struct {
	notebookRepo domain.NotebookRepository
	engine       *access.Engine
	logger       *zap.Logger
}

// NewNotebookService 创建 NotebookService 实例
func NewNotebookService(notebookRepo domain.NotebookRepository, engine *access.Engine, logger *zap.Logger) NotebookService {
	return &notebookService{
		notebookRepo: notebookRepo,
		engine:       engine,
		logger:       logger,
	}
}

func (s *notebookService) domainToDTO(nb *domain.Notebook, permission domain.SharePermission) *dto.NotebookDTO {
	if nb == nil {
		return nil
	}
	return &dto.NotebookDTO{
		ID:         nb.ID,
		UID:        nb.UID,
		Name:       nb.Name,
		Summary:    nb.Summary,
		Visibility: string(nb.Visibility),
		Permission: string(permission),
		CreatedAt:  timex.Time(nb.CreatedAt),
		UpdatedAt:  timex.Time(nb.UpdatedAt),
	}
}

func (s *notebookService) Create(ctx context.Context, uid int64, params *dto.NotebookCreateRequest) (*dto.NotebookDTO, error) {
	visibility := domain.Visibility(params.Visibility)
	if params.Visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	now := time.Now()
	nb := &domain.Notebook{
		UID:        uid,
		Name:       params.Name,
		Summary:    params.Summary,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.notebookRepo.Create(ctx, nb); err != nil {
		return nil, err
	}
	return s.domainToDTO(nb, domain.PermissionReadWrite), nil
}

func (s *notebookService) Get(ctx context.Context, uid int64, id int64) (*dto.NotebookDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNotebook, id, access.OperationRead)
	if err != nil {
		return nil, err
	}
	nb, err := s.notebookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(nb, grant.Permission), nil
}

func (s *notebookService) Update(ctx context.Context, uid int64, id int64, params *dto.NotebookUpdateRequest) (*dto.NotebookDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNotebook, id, access.OperationWrite)
	if err != nil {
		return nil, err
	}

	nb, err := s.notebookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		nb.Name = *params.Name
	}
	if params.Summary != nil {
		nb.Summary = *params.Summary
	}
	if params.Visibility != nil {
		if !grant.IsOwner {
			return nil, domain.ErrForbidden
		}
		nb.Visibility = domain.Visibility(*params.Visibility)
	}
	nb.UpdatedAt = time.Now()

	if err := s.notebookRepo.Update(ctx, nb); err != nil {
		return nil, err
	}
	return s.domainToDTO(nb, grant.Permission), nil
}

func (s *notebookService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNotebook, id, access.OperationDelete); err != nil {
		return err
	}
	return s.notebookRepo.SoftDelete(ctx, id, time.Now())
}

func (s *notebookService) List(ctx context.Context, uid int64, offset, limit int) ([]*dto.NotebookDTO, int64, error) {
	nbs, err := s.notebookRepo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.notebookRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.NotebookDTO, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, s.domainToDTO(nb, domain.PermissionReadWrite))
	}
	return out, total, nil
}
