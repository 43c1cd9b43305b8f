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

// ContactService 定义联系人业务服务接口，联系人关系随联系人一并管理
type ContactService interface {
	Create(ctx context.Context, uid int64, params *dto.ContactCreateRequest) (*dto.ContactDTO, error)
	Get(ctx context.Context, uid int64, id int64) (*dto.ContactDTO, error)
	Update(ctx context.Context, uid int64, id int64, params *dto.ContactUpdateRequest) (*dto.ContactDTO, error)
	Delete(ctx context.Context, uid int64, id int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]*dto.ContactDTO, int64, error)

	// CreateRelationship 建立两个联系人之间的关系，两端都必须属于当前用户
	CreateRelationship(ctx context.Context, uid int64, params *dto.RelationshipCreateRequest) (*dto.RelationshipDTO, error)
	DeleteRelationship(ctx context.Context, uid int64, id int64) error
	ListRelationships(ctx context.Context, uid int64, contactID int64) ([]*dto.RelationshipDTO, error)
}

// contactService 实现 ContactService 接口
type contactService struct {
	contactRepo domain.ContactRepository
	relRepo     domain.RelationshipRepository
	engine      *access.Engine
	logger      *zap.Logger
}

// NewContactService 创建 ContactService 实例
func NewContactService(contactRepo domain.ContactRepository, relRepo domain.RelationshipRepository, engine *access.Engine, logger *zap.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		relRepo:     relRepo,
		engine:      engine,
		logger:      logger,
	}
}

func (s *contactService) domainToDTO(c *domain.Contact, permission domain.SharePermission) *dto.ContactDTO {
	if c == nil {
		return nil
	}
	return &dto.ContactDTO{
		ID:         c.ID,
		UID:        c.UID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Company:    c.Company,
		Notes:      c.Notes,
		Visibility: string(c.Visibility),
		Permission: string(permission),
		CreatedAt:  timex.Time(c.CreatedAt),
		UpdatedAt:  timex.Time(c.UpdatedAt),
	}
}

func (s *contactService) relToDTO(r *domain.Relationship) *dto.RelationshipDTO {
	if r == nil {
		return nil
	}
	return &dto.RelationshipDTO{
		ID:           r.ID,
		FromContact:  r.FromContact,
		ToContact:    r.ToContact,
		RelationType: r.RelationType,
		CreatedAt:    timex.Time(r.CreatedAt),
	}
}

func (s *contactService) Create(ctx context.Context, uid int64, params *dto.ContactCreateRequest) (*dto.ContactDTO, error) {
	visibility := domain.Visibility(params.Visibility)
	if params.Visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	now := time.Now()
	c := &domain.Contact{
		UID:        uid,
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		Company:    params.Company,
		Notes:      params.Notes,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.contactRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.domainToDTO(c, domain.PermissionReadWrite), nil
}

func (s *contactService) Get(ctx context.Context, uid int64, id int64) (*dto.ContactDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeContact, id, access.OperationRead)
	if err != nil {
		return nil, err
	}
	c, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(c, grant.Permission), nil
}

func (s *contactService) Update(ctx context.Context, uid int64, id int64, params *dto.ContactUpdateRequest) (*dto.ContactDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeContact, id, access.OperationWrite)
	if err != nil {
		return nil, err
	}

	c, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.Phone != nil {
		c.Phone = *params.Phone
	}
	if params.Company != nil {
		c.Company = *params.Company
	}
	if params.Notes != nil {
		c.Notes = *params.Notes
	}
	if params.Visibility != nil {
		if !grant.IsOwner {
			return nil, domain.ErrForbidden
		}
		c.Visibility = domain.Visibility(*params.Visibility)
	}
	c.UpdatedAt = time.Now()

	if err := s.contactRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.domainToDTO(c, grant.Permission), nil
}

func (s *contactService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeContact, id, access.OperationDelete); err != nil {
		return err
	}
	return s.contactRepo.SoftDelete(ctx, id, time.Now())
}

func (s *contactService) List(ctx context.Context, uid int64, offset, limit int) ([]*dto.ContactDTO, int64, error) {
	cs, err := s.contactRepo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contactRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.ContactDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, s.domainToDTO(c, domain.PermissionReadWrite))
	}
	return out, total, nil
}

// CreateRelationship 建立联系人关系，两端联系人都必须属于当前用户
func (s *contactService) CreateRelationship(ctx context.Context, uid int64, params *dto.RelationshipCreateRequest) (*dto.RelationshipDTO, error) {
	for _, contactID := range []int64{params.FromContact, params.ToContact} {
		c, err := s.contactRepo.GetByID(ctx, contactID)
		if err != nil {
			return nil, err
		}
		if c.UID != uid || c.DeletedAt != nil {
			return nil, domain.ErrNotFound
		}
	}

	rel := &domain.Relationship{
		UID:          uid,
		FromContact:  params.FromContact,
		ToContact:    params.ToContact,
		RelationType: params.RelationType,
		CreatedAt:    time.Now(),
	}
	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, err
	}
	return s.relToDTO(rel), nil
}

func (s *contactService) DeleteRelationship(ctx context.Context, uid int64, id int64) error {
	if _, err := s.relRepo.GetByID(ctx, id, uid); err != nil {
		return err
	}
	return s.relRepo.Delete(ctx, id, uid)
}

func (s *contactService) ListRelationships(ctx context.Context, uid int64, contactID int64) ([]*dto.RelationshipDTO, error) {
	rels, err := s.relRepo.ListByContact(ctx, contactID, uid)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RelationshipDTO, 0, len(rels))
	for _, r := range rels {
		out = append(out, s.relToDTO(r))
	}
	return out, nil
}
