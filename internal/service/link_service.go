package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/logger"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"
	"github.com/evanhugh/assistant-hub-service/pkg/util"

	"go.uber.org/zap"
)

// LinkService 定义链接分享业务服务接口
type LinkService interface {
	// Create 创建链接分享，生成不可猜测的 Token
	Create(ctx context.Context, uid int64, params *dto.LinkCreateRequest) (*dto.LinkShareDTO, error)

	// Revoke 撤销链接分享，owner-only；撤销后 Token 解析为 NotFound
	Revoke(ctx context.Context, uid int64, linkID int64) error

	// Resolve 匿名解析链接，唯一的无主体入口。耗尽的链接返回
	// ErrShareGone，未知或已撤销的 Token 返回 ErrNotFound。
	Resolve(ctx context.Context, token string) (*dto.LinkViewDTO, error)
}

// linkService 实现 LinkService 接口
type linkService struct {
	linkRepo domain.LinkShareRepository
	userRepo domain.UserRepository
	finders  map[domain.ResourceType]domain.ResourceFinder
	engine   *access.Engine
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewLinkService 创建 LinkService 实例
func NewLinkService(linkRepo domain.LinkShareRepository, userRepo domain.UserRepository, finders map[domain.ResourceType]domain.ResourceFinder, engine *access.Engine, logger *zap.Logger, config *ServiceConfig) LinkService {
	return &linkService{
		linkRepo: linkRepo,
		userRepo: userRepo,
		finders:  finders,
		engine:   engine,
		logger:   logger,
		config:   config,
	}
}

func linkToDTO(l *domain.LinkShare, baseURL string) *dto.LinkShareDTO {
	if l == nil {
		return nil
	}
	out := &dto.LinkShareDTO{
		ID:           l.ID,
		ResourceType: string(l.ResourceType),
		ResourceID:   l.ResourceID,
		Token:        l.Token,
		Permission:   string(l.Permission),
		IsSingleView: l.IsSingleView,
		MaxViews:     l.MaxViews,
		ViewCount:    l.ViewCount,
		CreatedAt:    timex.Time(l.CreatedAt),
	}
	if baseURL != "" {
		out.URL = strings.TrimSuffix(baseURL, "/") + "/" + l.Token
	}
	return out
}

// Create 创建链接分享
func (s *linkService) Create(ctx context.Context, uid int64, params *dto.LinkCreateRequest) (*dto.LinkShareDTO, error) {
	resourceType := domain.ResourceType(params.ResourceType)
	if !resourceType.IsValid() {
		return nil, domain.ErrNotFound
	}

	grant, err := s.engine.Authorize(ctx, uid, resourceType, params.ResourceID, access.OperationManageShares)
	if err != nil {
		return nil, err
	}

	permission := domain.SharePermission(params.Permission)
	if params.Permission == "" {
		permission = domain.PermissionRead
	}

	tokenBytes := 32
	if s.config != nil && s.config.Share.LinkTokenBytes > 0 {
		tokenBytes = s.config.Share.LinkTokenBytes
	}
	token, err := util.GetSecureToken(tokenBytes)
	if err != nil {
		return nil, err
	}

	link := &domain.LinkShare{
		ResourceID:   params.ResourceID,
		ResourceType: resourceType,
		OwnerUID:     grant.Resource.OwnerUID,
		Token:        token,
		Permission:   permission,
		IsSingleView: params.IsSingleView,
		MaxViews:     params.MaxViews,
		CreatedBy:    uid,
		CreatedAt:    time.Now(),
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("link share created",
		zap.Int64(logger.FieldUID, uid),
		zap.String(logger.FieldResourceType, string(resourceType)),
		zap.Int64(logger.FieldResourceID, params.ResourceID),
		zap.Int64(logger.FieldLinkID, link.ID),
		zap.Bool("singleView", link.IsSingleView))

	baseURL := ""
	if s.config != nil {
		baseURL = s.config.Share.PublicBaseURL
	}
	return linkToDTO(link, baseURL), nil
}

// Revoke 撤销链接分享
func (s *linkService) Revoke(ctx context.Context, uid int64, linkID int64) error {
	link, err := s.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if _, err := s.engine.Authorize(ctx, uid, link.ResourceType, link.ResourceID, access.OperationManageShares); err != nil {
		return err
	}
	return s.linkRepo.Delete(ctx, linkID)
}

// Resolve 匿名解析链接。链接本身即是授权，资源读取绕过访问决策引擎。
// 耗尽检查先于计数递增；递增由存储层以单条带条件的 UPDATE 完成，
// 并发解析同一 max_views=1 的链接只会有一次成功。
func (s *linkService) Resolve(ctx context.Context, token string) (*dto.LinkViewDTO, error) {
	link, err := s.linkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.Exhausted() {
		return nil, domain.ErrShareGone
	}

	ok, err := s.linkRepo.Consume(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 条件更新未命中：链接被并发请求耗尽，或行在查找后被并发撤销。
		// 撤销对外表现为 NotFound，与耗尽的 Gone 必须区分开。
		if _, gerr := s.linkRepo.GetByID(ctx, link.ID); gerr != nil {
			if errors.Is(gerr, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, gerr
		}
		return nil, domain.ErrShareGone
	}

	finder, okf := s.finders[link.ResourceType]
	if !okf {
		return nil, domain.ErrNotFound
	}
	res, err := finder(ctx, link.ResourceID)
	if err != nil {
		return nil, err
	}
	if res.Deleted() {
		return nil, domain.ErrNotFound
	}

	sharedBy := ""
	if creator, err := s.userRepo.GetByUID(ctx, link.CreatedBy); err == nil {
		sharedBy = creator.Email
	}

	return &dto.LinkViewDTO{
		ResourceType: string(link.ResourceType),
		ResourceID:   link.ResourceID,
		Title:        res.Title,
		Body:         res.Body,
		Permission:   string(link.Permission),
		SharedBy:     sharedBy,
	}, nil
}
