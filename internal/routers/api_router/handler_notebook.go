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

// NotebookHandler 笔记本 API 路由处理器
type NotebookHandler struct {
	*Handler
}

// NewNotebookHandler 创建 NotebookHandler 实例
func NewNotebookHandler(a *app.App) *NotebookHandler {
	return &NotebookHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记本
func (h *NotebookHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.NotebookService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "NotebookHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Get 获取单个笔记本，授权由访问决策引擎判定
func (h *NotebookHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.NotebookService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "NotebookHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Update 更新笔记本，需要写权限
func (h *NotebookHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.NotebookUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.NotebookService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "NotebookHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Delete 软删除笔记本，owner-only
func (h *NotebookHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.NotebookService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "NotebookHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// List 分页列出当前用户的笔记本
func (h *NotebookHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)

	out, total, err := h.App.NotebookService.List(c.Request.Context(), uid,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "NotebookHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, out, int(total))
}
