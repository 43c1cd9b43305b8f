package api_router

import (
	"github.com/evanhugh/assistant-hub-service/internal/app"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	pkgapp "github.com/evanhugh/assistant-hub-service/pkg/app"
	"github.com/evanhugh/assistant-hub-service/pkg/code"
	"github.com/evanhugh/assistant-hub-service/pkg/convert"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DevSessionHandler 开发会话 API 路由处理器（owner-only，不可分享）
type DevSessionHandler struct {
	*Handler
}

// NewDevSessionHandler 创建 DevSessionHandler 实例
func NewDevSessionHandler(a *app.App) *DevSessionHandler {
	return &DevSessionHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建开发会话
func (h *DevSessionHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.DevSessionCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("DevSessionHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.DevSessionService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "DevSessionHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Get 获取单个开发会话
func (h *DevSessionHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.DevSessionService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "DevSessionHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Update 更新开发会话（可标记结束时间）
func (h *DevSessionHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.DevSessionUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("DevSessionHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.DevSessionService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "DevSessionHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Delete 删除开发会话
func (h *DevSessionHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.DevSessionService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "DevSessionHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// List 分页列出当前用户的开发会话
func (h *DevSessionHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)

	out, total, err := h.App.DevSessionService.List(c.Request.Context(), uid,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "DevSessionHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, out, int(total))
}
