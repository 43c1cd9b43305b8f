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

// ShareHandler 用户分享 API 路由处理器。
// 分享管理是 owner-only：非所有者得到 403，而对不可见的资源则与
// 不存在一样返回 404。
type ShareHandler struct {
	*Handler
}

// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(a *app.App) *ShareHandler {
	return &ShareHandler{
		Handler: NewHandler(a),
	}
}

// Create creates a user share
// @Summary Create user share
// @Description 为资源创建对单个用户的分享。重复的生效分享返回 409。
// @Tags Share
// @Security UserAuthToken
// @Accept json
// @Produce json
// @Param params body dto.ShareCreateRequest true "Share Parameters"
// @Success 201 {object} pkgapp.Res{data=dto.UserShareDTO} "Created"
// @Failure 409 {object} pkgapp.Res "Already Shared"
// @Router /api/shares [post]
func (h *ShareHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ShareHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ShareService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "ShareHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// UpdatePermission 升级/降级分享权限，立即生效
// @Router /api/shares/{id} [patch]
func (h *ShareHandler) UpdatePermission(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.ShareUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ShareHandler.UpdatePermission.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ShareService.UpdatePermission(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "ShareHandler.UpdatePermission", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// Revoke 撤销用户分享，被分享人立即失去访问
// @Router /api/shares/{id} [delete]
func (h *ShareHandler) Revoke(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.ShareService.Revoke(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "ShareHandler.Revoke", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// ListForResource 列出资源上的全部分享（用户分享 + 链接分享），owner-only
// @Router /api/resources/{type}/{id}/shares [get]
func (h *ShareHandler) ListForResource(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.ShareService.ListForResource(c.Request.Context(), uid, c.Param("type"), id)
	if err != nil {
		h.errorResponse(c, "ShareHandler.ListForResource", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}

// SharedWithMe 列出分享给当前用户的资源
// @Router /api/shared-with-me [get]
func (h *ShareHandler) SharedWithMe(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	out, err := h.App.ShareService.ListSharedWithMe(c.Request.Context(), uid)
	if err != nil {
		h.errorResponse(c, "ShareHandler.SharedWithMe", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}
