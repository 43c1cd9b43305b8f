package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/dao"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/service"
	pkgapp "github.com/evanhugh/assistant-hub-service/pkg/app"
	"github.com/evanhugh/assistant-hub-service/pkg/storage/local_fs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo         domain.UserRepository
	NoteRepo         domain.NoteRepository
	NotebookRepo     domain.NotebookRepository
	ContactRepo      domain.ContactRepository
	RelationshipRepo domain.RelationshipRepository
	WorkItemRepo     domain.WorkItemRepository
	MemoryRepo       domain.MemoryRepository
	DevSessionRepo   domain.DevSessionRepository
	AttachmentRepo   domain.AttachmentRepository
	ShareRepo        domain.UserShareRepository
	LinkRepo         domain.LinkShareRepository

	// 访问决策引擎
	Engine *access.Engine

	// Service 层
	UserService       service.UserService
	NoteService       service.NoteService
	NotebookService   service.NotebookService
	ContactService    service.ContactService
	WorkItemService   service.WorkItemService
	MemoryService     service.MemoryService
	DevSessionService service.DevSessionService
	AttachmentService service.AttachmentService
	ShareService      service.ShareService
	LinkService       service.LinkService

	// 基础设施组件
	TokenManager pkgapp.TokenManager
	Storage      *local_fs.LocalFS

	// 启动时间（健康检查用）
	StartTime time.Time

	// 关闭控制
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	// 创建 DatabaseConfig 用于 DAO
	dbConfig := &dao.DatabaseConfig{
		Type:            cfg.Database.Type,
		Path:            cfg.Database.Path,
		UserName:        cfg.Database.UserName,
		Password:        cfg.Database.Password,
		Host:            cfg.Database.Host,
		Name:            cfg.Database.Name,
		TablePrefix:     cfg.Database.TablePrefix,
		AutoMigrate:     cfg.Database.AutoMigrate,
		Charset:         cfg.Database.Charset,
		ParseTime:       cfg.Database.ParseTime,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RunMode:         cfg.Server.RunMode,
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(),
		dao.WithConfig(dbConfig),
		dao.WithLogger(logger),
	)

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "assistant-hub-service",
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化本地文件存储（附件内容）
	storage, err := local_fs.NewClient(&cfg.LocalFS)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}
	a.Storage = storage

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.NotebookRepo = dao.NewNotebookRepository(a.Dao)
	a.ContactRepo = dao.NewContactRepository(a.Dao)
	a.RelationshipRepo = dao.NewRelationshipRepository(a.Dao)
	a.WorkItemRepo = dao.NewWorkItemRepository(a.Dao)
	a.MemoryRepo = dao.NewMemoryRepository(a.Dao)
	a.DevSessionRepo = dao.NewDevSessionRepository(a.Dao)
	a.AttachmentRepo = dao.NewAttachmentRepository(a.Dao)
	a.ShareRepo = dao.NewUserShareRepository(a.Dao)
	a.LinkRepo = dao.NewLinkShareRepository(a.Dao)

	// 资源查找表：按类型把各实体归一为公共资源形态，软删除的行也返回，
	// 交由访问决策引擎统一判定
	finders := a.resourceFinders()

	// 初始化访问决策引擎
	a.Engine = access.NewEngine(finders, a.ShareRepo, access.WithLogger(logger))

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		Share: service.ShareServiceConfig{
			LinkTokenBytes: cfg.Share.LinkTokenBytes,
			PublicBaseURL:  cfg.Share.PublicBaseURL,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.Engine, logger)
	a.NotebookService = service.NewNotebookService(a.NotebookRepo, a.Engine, logger)
	a.ContactService = service.NewContactService(a.ContactRepo, a.RelationshipRepo, a.Engine, logger)
	a.WorkItemService = service.NewWorkItemService(a.WorkItemRepo, a.Engine, logger)
	a.MemoryService = service.NewMemoryService(a.MemoryRepo, logger)
	a.DevSessionService = service.NewDevSessionService(a.DevSessionRepo, logger)
	a.AttachmentService = service.NewAttachmentService(a.AttachmentRepo, a.NoteRepo, a.Storage, logger)
	a.ShareService = service.NewShareService(a.ShareRepo, a.LinkRepo, a.UserRepo, finders, a.Engine, logger)
	a.LinkService = service.NewLinkService(a.LinkRepo, a.UserRepo, finders, a.Engine, logger, svcConfig)

	logger.Info("App container initialized successfully",
		zap.String("databaseType", cfg.Database.Type),
		zap.String("runMode", cfg.Server.RunMode))

	return a, nil
}

// resourceFinders 构建访问决策引擎与分享服务共用的资源查找表
func (a *App) resourceFinders() map[domain.ResourceType]domain.ResourceFinder {
	return map[domain.ResourceType]domain.ResourceFinder{
		domain.ResourceTypeNote: func(ctx context.Context, id int64) (*domain.Resource, error) {
			n, err := a.NoteRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return n.AsResource(), nil
		},
		domain.ResourceTypeNotebook: func(ctx context.Context, id int64) (*domain.Resource, error) {
			n, err := a.NotebookRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return n.AsResource(), nil
		},
		domain.ResourceTypeContact: func(ctx context.Context, id int64) (*domain.Resource, error) {
			c, err := a.ContactRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return c.AsResource(), nil
		},
		domain.ResourceTypeWorkItem: func(ctx context.Context, id int64) (*domain.Resource, error) {
			w, err := a.WorkItemRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return w.AsResource(), nil
		},
	}
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器：等待后台操作结束后关闭数据库连接
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	var errs []error

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All background operations completed")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout waiting for background operations")
		errs = append(errs, fmt.Errorf("background operations timeout: %w", ctx.Err()))
	}

	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		a.logger.Warn("App container shutdown completed with errors",
			zap.Int("errorCount", len(errs)))
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// TrackOperation 跟踪后台操作（用于优雅关闭时等待）
// 返回一个函数，在操作完成时调用
func (a *App) TrackOperation() func() {
	a.wg.Add(1)
	return func() {
		a.wg.Done()
	}
}
