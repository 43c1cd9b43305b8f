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

// WorkItemHandler 工作项 API 路由处理器
type WorkItemHandler struct {
	*Handler
}

// NewWorkItemHandler 创建 WorkItemHandler 实例
func NewWorkItemHandler(a *app.App) *WorkItemHandler {
	return &WorkItemHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建工作项
func (h *WorkItemHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.WorkItemCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("WorkItemHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.WorkItemService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "WorkItemHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Get 获取单个工作项
func (h *WorkItemHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.WorkItemService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "WorkItemHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Update 更新工作项（含状态流转）
func (h *WorkItemHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.WorkItemUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("WorkItemHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.WorkItemService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "WorkItemHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Delete 软删除工作项，owner-only
func (h *WorkItemHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.WorkItemService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "WorkItemHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// List 分页列出当前用户的工作项，可按状态过滤
func (h *WorkItemHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)
	status := c.Query("status")

	out, total, err := h.App.WorkItemService.List(c.Request.Context(), uid, status,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "WorkItemHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, out, int(total))
}
