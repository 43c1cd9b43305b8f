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

// ContactHandler 联系人 API 路由处理器，含联系人关系管理
type ContactHandler struct {
	*Handler
}

// NewContactHandler 创建 ContactHandler 实例
func NewContactHandler(a *app.App) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建联系人
func (h *ContactHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ContactCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ContactHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ContactService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "ContactHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Get 获取单个联系人
func (h *ContactHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ContactService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "ContactHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Update 更新联系人
func (h *ContactHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.ContactUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ContactHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ContactService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "ContactHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Delete 软删除联系人，owner-only
func (h *ContactHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.ContactService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "ContactHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// List 分页列出当前用户的联系人
func (h *ContactHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)

	out, total, err := h.App.ContactService.List(c.Request.Context(), uid,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "ContactHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, out, int(total))
}

// CreateRelationship 建立两个联系人之间的关系，两端都必须属于当前用户
func (h *ContactHandler) CreateRelationship(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.RelationshipCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ContactHandler.CreateRelationship.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ContactService.CreateRelationship(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "ContactHandler.CreateRelationship", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// DeleteRelationship 删除联系人关系
func (h *ContactHandler) DeleteRelationship(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.ContactService.DeleteRelationship(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "ContactHandler.DeleteRelationship", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// ListRelationships 列出某联系人的全部关系
func (h *ContactHandler) ListRelationships(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	contactID, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ContactService.ListRelationships(c.Request.Context(), uid, contactID)
	if err != nil {
		h.errorResponse(c, "ContactHandler.ListRelationships", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}
