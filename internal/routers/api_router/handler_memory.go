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

// MemoryHandler 记忆条目 API 路由处理器（owner-only，不可分享）
type MemoryHandler struct {
	*Handler
}

// NewMemoryHandler 创建 MemoryHandler 实例
func NewMemoryHandler(a *app.App) *MemoryHandler {
	return &MemoryHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建记忆条目
func (h *MemoryHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MemoryCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoryHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.MemoryService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "MemoryHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Get 获取单条记忆条目
func (h *MemoryHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.MemoryService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "MemoryHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Update 更新记忆条目
func (h *MemoryHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.MemoryUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoryHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.MemoryService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "MemoryHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Delete 删除记忆条目
func (h *MemoryHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.MemoryService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "MemoryHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// List 分页列出当前用户的记忆条目
func (h *MemoryHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)

	out, total, err := h.App.MemoryService.List(c.Request.Context(), uid,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "MemoryHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, out, int(total))
}
