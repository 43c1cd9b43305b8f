// Package routers 组装 HTTP 路由：公共 API、认证 API 与私有运维端口
package routers

import (
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/app"
	"github.com/evanhugh/assistant-hub-service/internal/middleware"
	"github.com/evanhugh/assistant-hub-service/internal/routers/api_router"
	"github.com/evanhugh/assistant-hub-service/pkg/limiter"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/public",
		FillInterval: time.Second,
		Capacity:     30,
		Quantum:      30,
	},
)

// NewRouter 创建主路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
	api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
	api.Use(middleware.RateLimiter(methodLimiters))
	api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
	api.Use(middleware.Cors())
	api.Use(middleware.LangWithTranslator(uni))
	api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
	api.Use(api_router.RequestMetrics())

	userHandler := api_router.NewUserHandler(appContainer)
	noteHandler := api_router.NewNoteHandler(appContainer)
	notebookHandler := api_router.NewNotebookHandler(appContainer)
	contactHandler := api_router.NewContactHandler(appContainer)
	workItemHandler := api_router.NewWorkItemHandler(appContainer)
	memoryHandler := api_router.NewMemoryHandler(appContainer)
	devSessionHandler := api_router.NewDevSessionHandler(appContainer)
	attachmentHandler := api_router.NewAttachmentHandler(appContainer)
	shareHandler := api_router.NewShareHandler(appContainer)
	linkHandler := api_router.NewLinkHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	// 无需认证的入口
	api.POST("/user/register", userHandler.Register)
	api.POST("/user/login", userHandler.Login)
	api.GET("/health", healthHandler.Check)

	// 链接解析是唯一的匿名资源入口：Token 即授权
	api.GET("/public/links/:token", linkHandler.Resolve)

	// 单个资源的读取允许匿名访问公开资源，Token 存在时解析出主体
	optional := api.Group("")
	optional.Use(middleware.UserAuthTokenOptional(cfg.Security.AuthTokenKey))
	{
		optional.GET("/notes/:id", noteHandler.Get)
		optional.GET("/notebooks/:id", notebookHandler.Get)
		optional.GET("/contacts/:id", contactHandler.Get)
		optional.GET("/work-items/:id", workItemHandler.Get)
	}

	// 其余操作要求认证主体
	authed := api.Group("")
	authed.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))
	{
		authed.POST("/user/change_password", userHandler.ChangePassword)
		authed.GET("/user/info", userHandler.Info)

		authed.POST("/notes", noteHandler.Create)
		authed.GET("/notes", noteHandler.List)
		authed.PATCH("/notes/:id", noteHandler.Update)
		authed.DELETE("/notes/:id", noteHandler.Delete)
		authed.PUT("/notes/:id/restore", noteHandler.Restore)

		authed.POST("/notes/:id/attachments", attachmentHandler.Upload)
		authed.GET("/notes/:id/attachments", attachmentHandler.ListByNote)
		authed.GET("/attachments/:id/content", attachmentHandler.Download)
		authed.DELETE("/attachments/:id", attachmentHandler.Delete)

		authed.POST("/notebooks", notebookHandler.Create)
		authed.GET("/notebooks", notebookHandler.List)
		authed.PATCH("/notebooks/:id", notebookHandler.Update)
		authed.DELETE("/notebooks/:id", notebookHandler.Delete)

		authed.POST("/contacts", contactHandler.Create)
		authed.GET("/contacts", contactHandler.List)
		authed.PATCH("/contacts/:id", contactHandler.Update)
		authed.DELETE("/contacts/:id", contactHandler.Delete)
		authed.POST("/relationships", contactHandler.CreateRelationship)
		authed.DELETE("/relationships/:id", contactHandler.DeleteRelationship)
		authed.GET("/contacts/:id/relationships", contactHandler.ListRelationships)

		authed.POST("/work-items", workItemHandler.Create)
		authed.GET("/work-items", workItemHandler.List)
		authed.PATCH("/work-items/:id", workItemHandler.Update)
		authed.DELETE("/work-items/:id", workItemHandler.Delete)

		authed.POST("/memories", memoryHandler.Create)
		authed.GET("/memories", memoryHandler.List)
		authed.GET("/memories/:id", memoryHandler.Get)
		authed.PATCH("/memories/:id", memoryHandler.Update)
		authed.DELETE("/memories/:id", memoryHandler.Delete)

		authed.POST("/dev-sessions", devSessionHandler.Create)
		authed.GET("/dev-sessions", devSessionHandler.List)
		authed.GET("/dev-sessions/:id", devSessionHandler.Get)
		authed.PATCH("/dev-sessions/:id", devSessionHandler.Update)
		authed.DELETE("/dev-sessions/:id", devSessionHandler.Delete)

		authed.POST("/shares", shareHandler.Create)
		authed.PATCH("/shares/:id", shareHandler.UpdatePermission)
		authed.DELETE("/shares/:id", shareHandler.Revoke)
		authed.GET("/resources/:type/:id/shares", shareHandler.ListForResource)
		authed.GET("/shared-with-me", shareHandler.SharedWithMe)

		authed.POST("/links", linkHandler.Create)
		authed.DELETE("/links/:id", linkHandler.Revoke)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
