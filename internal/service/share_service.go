package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/logger"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrShareToSelf 资源不能分享给所有者自己
var ErrShareToSelf = errors.New("cannot share a resource with its owner")

// ShareService 定义用户分享业务服务接口。
// 所有修改操作先经过访问决策引擎的 manage_shares 检查，存储层
// 本身不重复推导所有权。
type ShareService interface {
	// Create 创建用户分享，重复的生效分享返回 ErrAlreadyShared
	Create(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.UserShareDTO, error)

	// UpdatePermission 升级/降级分享权限
	UpdatePermission(ctx context.Context, uid int64, shareID int64, params *dto.ShareUpdateRequest) (*dto.UserShareDTO, error)

	// Revoke 撤销用户分享
	Revoke(ctx context.Context, uid int64, shareID int64) error

	// ListForResource 列出资源上的全部分享（用户分享 + 链接分享），owner-only
	ListForResource(ctx context.Context, uid int64, resourceType string, resourceID int64) (*dto.ResourceShareListDTO, error)

	// ListSharedWithMe 列出分享给当前用户的资源，过滤已过期分享与已删除资源
	ListSharedWithMe(ctx context.Context, uid int64) ([]*dto.SharedResourceDTO, error)
}

// shareService 实现 ShareService 接口
type shareService struct {
	shareRepo domain.UserShareRepository
	linkRepo  domain.LinkShareRepository
	userRepo  domain.UserRepository
	finders   map[domain.ResourceType]domain.ResourceFinder
	engine    *access.Engine
	logger    *zap.Logger
	sf        *singleflight.Group
	now       func() time.Time
}

// NewShareService 创建 ShareService 实例
func NewShareService(shareRepo domain.UserShareRepository, linkRepo domain.LinkShareRepository, userRepo domain.UserRepository, finders map[domain.ResourceType]domain.ResourceFinder, engine *access.Engine, logger *zap.Logger) ShareService {
	return &shareService{
		shareRepo: shareRepo,
		linkRepo:  linkRepo,
		userRepo:  userRepo,
		finders:   finders,
		engine:    engine,
		logger:    logger,
		sf:        &singleflight.Group{},
		now:       time.Now,
	}
}

func shareToDTO(s *domain.UserShare) *dto.UserShareDTO {
	if s == nil {
		return nil
	}
	var expiresAt *timex.Time
	if s.ExpiresAt != nil {
		t := timex.Time(*s.ExpiresAt)
		expiresAt = &t
	}
	return &dto.UserShareDTO{
		ID:           s.ID,
		ResourceType: string(s.ResourceType),
		ResourceID:   s.ResourceID,
		GranteeEmail: s.GranteeEmail,
		Permission:   string(s.Permission),
		ExpiresAt:    expiresAt,
		CreatedAt:    timex.Time(s.CreatedAt),
		UpdatedAt:    timex.Time(s.UpdatedAt),
	}
}

// Create 创建用户分享
func (s *shareService) Create(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.UserShareDTO, error) {
	resourceType := domain.ResourceType(params.ResourceType)
	if !resourceType.UserShareable() {
		return nil, domain.ErrNotFound
	}

	grant, err := s.engine.Authorize(ctx, uid, resourceType, params.ResourceID, access.OperationManageShares)
	if err != nil {
		return nil, err
	}

	grantee, err := s.userRepo.GetByEmail(ctx, params.GranteeEmail)
	if err != nil {
		return nil, err
	}
	if grantee.UID == uid {
		return nil, ErrShareToSelf
	}

	permission := domain.SharePermission(params.Permission)
	if params.Permission == "" {
		permission = domain.PermissionRead
	}

	var expiresAt *time.Time
	if params.ExpiresAt != nil {
		t := time.Time(*params.ExpiresAt)
		expiresAt = &t
	}

	now := s.now()
	share := &domain.UserShare{
		ResourceID:   params.ResourceID,
		ResourceType: resourceType,
		OwnerUID:     grant.Resource.OwnerUID,
		GranteeUID:   grantee.UID,
		GranteeEmail: grantee.Email,
		Permission:   permission,
		ExpiresAt:    expiresAt,
		CreatedBy:    uid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	s.logger.Info("user share created",
		zap.Int64(logger.FieldUID, uid),
		zap.String(logger.FieldResourceType, string(resourceType)),
		zap.Int64(logger.FieldResourceID, params.ResourceID),
		zap.Int64(logger.FieldGrantee, grantee.UID),
		zap.String("permission", string(permission)))

	return shareToDTO(share), nil
}

// ownShare 加载分享并确认 uid 是其资源的所有者
func (s *shareService) ownShare(ctx context.Context, uid int64, shareID int64) (*domain.UserShare, error) {
	share, err := s.shareRepo.GetByID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if _, err := s.engine.Authorize(ctx, uid, share.ResourceType, share.ResourceID, access.OperationManageShares); err != nil {
		return nil, err
	}
	return share, nil
}

// UpdatePermission 升级/降级分享权限
func (s *shareService) UpdatePermission(ctx context.Context, uid int64, shareID int64, params *dto.ShareUpdateRequest) (*dto.UserShareDTO, error) {
	share, err := s.ownShare(ctx, uid, shareID)
	if err != nil {
		return nil, err
	}

	permission := domain.SharePermission(params.Permission)
	if err := s.shareRepo.UpdatePermission(ctx, shareID, permission); err != nil {
		return nil, err
	}
	share.Permission = permission
	return shareToDTO(share), nil
}

// Revoke 撤销用户分享
func (s *shareService) Revoke(ctx context.Context, uid int64, shareID int64) error {
	if _, err := s.ownShare(ctx, uid, shareID); err != nil {
		return err
	}
	return s.shareRepo.Delete(ctx, shareID)
}

// ListForResource 列出资源上的全部分享，owner-only
func (s *shareService) ListForResource(ctx context.Context, uid int64, resourceType string, resourceID int64) (*dto.ResourceShareListDTO, error) {
	rt := domain.ResourceType(resourceType)
	if !rt.IsValid() {
		return nil, domain.ErrNotFound
	}
	if _, err := s.engine.Authorize(ctx, uid, rt, resourceID, access.OperationManageShares); err != nil {
		return nil, err
	}

	shares, err := s.shareRepo.ListByResource(ctx, rt, resourceID)
	if err != nil {
		return nil, err
	}
	links, err := s.linkRepo.ListByResource(ctx, rt, resourceID)
	if err != nil {
		return nil, err
	}

	out := &dto.ResourceShareListDTO{
		UserShares: make([]*dto.UserShareDTO, 0, len(shares)),
		LinkShares: make([]*dto.LinkShareDTO, 0, len(links)),
	}
	for _, sh := range shares {
		out.UserShares = append(out.UserShares, shareToDTO(sh))
	}
	for _, l := range links {
		out.LinkShares = append(out.LinkShares, linkToDTO(l, ""))
	}
	return out, nil
}

// ListSharedWithMe 列出分享给当前用户的资源。
// 只读路径，并发重复请求通过 singleflight 合并。合并执行使用与胜出
// 调用方取消解耦的 context，单个请求被取消不会连带失败其他等待者。
func (s *shareService) ListSharedWithMe(ctx context.Context, uid int64) ([]*dto.SharedResourceDTO, error) {
	sfCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(fmt.Sprintf("shared-with-me:%d", uid), func() (interface{}, error) {
		return s.listSharedWithMe(sfCtx, uid)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*dto.SharedResourceDTO), nil
}

func (s *shareService) listSharedWithMe(ctx context.Context, uid int64) ([]*dto.SharedResourceDTO, error) {
	shares, err := s.shareRepo.ListActiveByGrantee(ctx, uid, s.now())
	if err != nil {
		return nil, err
	}

	ownerEmails := make(map[int64]string)
	out := make([]*dto.SharedResourceDTO, 0, len(shares))
	for _, share := range shares {
		finder, ok := s.finders[share.ResourceType]
		if !ok {
			continue
		}
		res, err := finder(ctx, share.ResourceID)
		if err != nil || res.Deleted() {
			// 资源已删除的分享不展示，但行保留，恢复资源后分享继续生效
			continue
		}

		email, ok := ownerEmails[share.OwnerUID]
		if !ok {
			owner, err := s.userRepo.GetByUID(ctx, share.OwnerUID)
			if err == nil {
				email = owner.Email
			}
			ownerEmails[share.OwnerUID] = email
		}

		out = append(out, &dto.SharedResourceDTO{
			ResourceType: string(share.ResourceType),
			ResourceID:   share.ResourceID,
			Title:        res.Title,
			Permission:   string(share.Permission),
			SharedBy:     email,
			SharedAt:     timex.Time(share.CreatedAt),
		})
	}
	return out, nil
}
