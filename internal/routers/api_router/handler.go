// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"
	"errors"

	"github.com/evanhugh/assistant-hub-service/internal/app"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/middleware"
	"github.com/evanhugh/assistant-hub-service/internal/service"
	"github.com/evanhugh/assistant-hub-service/pkg/code"
	apperrors "github.com/evanhugh/assistant-hub-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// errorCode maps domain and service errors onto registered Code objects.
// NotFound / Forbidden / AlreadyShared / Gone keep their distinct HTTP
// statuses (404 / 403 / 409 / 410) so clients can react without parsing
// message text.
// errorCode 将领域/服务错误映射到已注册的错误码对象。
// NotFound / Forbidden / AlreadyShared / Gone 保持各自独立的 HTTP 状态码
// （404 / 403 / 409 / 410），客户端无需解析消息文本即可处理。
func errorCode(err error) *code.Code {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return code.ErrorResourceNotFound
	case errors.Is(err, domain.ErrForbidden):
		return code.ErrorResourceForbidden
	case errors.Is(err, domain.ErrAlreadyShared):
		return code.ErrorAlreadyShared
	case errors.Is(err, domain.ErrShareGone):
		return code.ErrorShareGone
	case errors.Is(err, domain.ErrUserNotFound):
		return code.ErrorUserNotFound
	case errors.Is(err, domain.ErrUserExists):
		return code.ErrorUserAlreadyExists
	case errors.Is(err, service.ErrShareToSelf):
		return code.ErrorShareGranteeSelf
	case errors.Is(err, service.ErrRegisterDisabled):
		return code.ErrorUserRegisterDisabled
	case errors.Is(err, service.ErrPasswordMismatch):
		return code.ErrorUserPasswordMismatch
	case errors.Is(err, service.ErrInvalidCredentials):
		return code.ErrorUserPasswordIncorrect
	case errors.Is(err, service.ErrInvalidEmail):
		return code.ErrorInvalidParams.WithDetails(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return code.ErrorRequestTimeout
	default:
		return code.ErrorServerInternal.WithDetails(err.Error())
	}
}

// errorResponse 记录错误并输出统一错误响应（带 Trace ID）
func (h *Handler) errorResponse(c *gin.Context, method string, err error) {
	traceID := middleware.GetTraceIDFromGin(c)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
	apperrors.ErrorResponseWithCode(c, errorCode(err), err, traceID)
}

// logError records error log, including Trace ID
// logError 记录错误日志，包含 Trace ID
func (h *Handler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
