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

// WorkItemService 定义工作项业务服务接口
type WorkItemService interface {
	Create(ctx context.Context, uid int64, params *dto.WorkItemCreateRequest) (*dto.WorkItemDTO, error)
	Get(ctx context.Context, uid int64, id int64) (*dto.WorkItemDTO, error)
	Update(ctx context.Context, uid int64, id int64, params *dto.WorkItemUpdateRequest) (*dto.WorkItemDTO, error)
	Delete(ctx context.Context, uid int64, id int64) error
	List(ctx context.Context, uid int64, status string, offset, limit int) ([]*dto.WorkItemDTO, int64, error)
}

// workItemService 实现 WorkItemService 接口
type workItemService struct {
	workItemRepo domain.WorkItemRepository
	engine       *access.Engine
	logger       *zap.Logger
}

// NewWorkItemService 创建 WorkItemService 实例
func NewWorkItemService(workItemRepo domain.WorkItemRepository, engine *access.Engine, logger *zap.Logger) WorkItemService {
	return &workItemService{
		workItemRepo: workItemRepo,
		engine:       engine,
		logger:       logger,
	}
}

func (s *workItemService) domainToDTO(w *domain.WorkItem, permission domain.SharePermission) *dto.WorkItemDTO {
	if w == nil {
		return nil
	}
	var dueAt *timex.Time
	if w.DueAt != nil {
		t := timex.Time(*w.DueAt)
		dueAt = &t
	}
	return &dto.WorkItemDTO{
		ID:          w.ID,
		UID:         w.UID,
		Title:       w.Title,
		Description: w.Description,
		Status:      string(w.Status),
		DueAt:       dueAt,
		Visibility:  string(w.Visibility),
		Permission:  string(permission),
		CreatedAt:   timex.Time(w.CreatedAt),
		UpdatedAt:   timex.Time(w.UpdatedAt),
	}
}

func (s *workItemService) Create(ctx context.Context, uid int64, params *dto.WorkItemCreateRequest) (*dto.WorkItemDTO, error) {
	status := domain.WorkItemStatus(params.Status)
	if params.Status == "" {
		status = domain.WorkItemStatusOpen
	}
	visibility := domain.Visibility(params.Visibility)
	if params.Visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	var dueAt *time.Time
	if params.DueAt != nil {
		t := time.Time(*params.DueAt)
		dueAt = &t
	}

	now := time.Now()
	w := &domain.WorkItem{
		UID:         uid,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		DueAt:       dueAt,
		Visibility:  visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.workItemRepo.Create(ctx, w); err != nil {
		return nil, err
	}
	return s.domainToDTO(w, domain.PermissionReadWrite), nil
}

func (s *workItemService) Get(ctx context.Context, uid int64, id int64) (*dto.WorkItemDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeWorkItem, id, access.OperationRead)
	if err != nil {
		return nil, err
	}
	w, err := s.workItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(w, grant.Permission), nil
}

func (s *workItemService) Update(ctx context.Context, uid int64, id int64, params *dto.WorkItemUpdateRequest) (*dto.WorkItemDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeWorkItem, id, access.OperationWrite)
	if err != nil {
		return nil, err
	}

	w, err := s.workItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		w.Title = *params.Title
	}
	if params.Description != nil {
		w.Description = *params.Description
	}
	if params.Status != nil {
		w.Status = domain.WorkItemStatus(*params.Status)
	}
	if params.DueAt != nil {
		t := time.Time(*params.DueAt)
		w.DueAt = &t
	}
	if params.Visibility != nil {
		if !grant.IsOwner {
			return nil, domain.ErrForbidden
		}
		w.Visibility = domain.Visibility(*params.Visibility)
	}
	w.UpdatedAt = time.Now()

	if err := s.workItemRepo.Update(ctx, w); err != nil {
		return nil, err
	}
	return s.domainToDTO(w, grant.Permission), nil
}

func (s *workItemService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeWorkItem, id, access.OperationDelete); err != nil {
		return err
	}
	return s.workItemRepo.SoftDelete(ctx, id, time.Now())
}

func (s *workItemService) List(ctx context.Context, uid int64, status string, offset, limit int) ([]*dto.WorkItemDTO, int64, error) {
	ws, err := s.workItemRepo.ListByUID(ctx, uid, domain.WorkItemStatus(status), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.workItemRepo.CountByUID(ctx, uid, domain.WorkItemStatus(status))
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.WorkItemDTO, 0, len(ws))
	for _, w := range ws {
		out = append(out, s.domainToDTO(w, domain.PermissionReadWrite))
	}
	return out, total, nil
}
