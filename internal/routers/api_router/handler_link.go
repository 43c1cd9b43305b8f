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

// LinkHandler 链接分享 API 路由处理器。
// Resolve 是整个服务唯一的匿名入口：链接 Token 本身即是授权。
type LinkHandler struct {
	*Handler
}

// NewLinkHandler 创建 LinkHandler 实例
func NewLinkHandler(a *app.App) *LinkHandler {
	return &LinkHandler{
		Handler: NewHandler(a),
	}
}

// Create creates a share link
// @Summary Create share link
// @Description 为资源创建匿名访问链接，可配置单次查看或最大查看次数。
// @Tags Link
// @Security UserAuthToken
// @Accept json
// @Produce json
// @Param params body dto.LinkCreateRequest true "Link Parameters"
// @Success 201 {object} pkgapp.Res{data=dto.LinkShareDTO} "Created"
// @Router /api/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LinkCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("LinkHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.LinkService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "LinkHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Revoke 撤销链接分享；撤销后 Token 解析为 404 而非 410
// @Router /api/links/{id} [delete]
func (h *LinkHandler) Revoke(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.LinkService.Revoke(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "LinkHandler.Revoke", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// Resolve resolves a share link anonymously
// @Summary Resolve share link
// @Description 匿名解析分享链接并计一次查看。耗尽的链接返回 410，未知或已撤销的 Token 返回 404。
// @Tags Link
// @Produce json
// @Param token path string true "Link Token"
// @Success 200 {object} pkgapp.Res{data=dto.LinkViewDTO} "Success"
// @Failure 404 {object} pkgapp.Res "Unknown Or Revoked Token"
// @Failure 410 {object} pkgapp.Res "Link Exhausted"
// @Router /api/public/links/{token} [get]
func (h *LinkHandler) Resolve(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	token := c.Param("token")
	if token == "" {
		response.ToResponse(code.ErrorInvalidParams)
		return
	}

	out, err := h.App.LinkService.Resolve(c.Request.Context(), token)
	if err != nil {
		h.errorResponse(c, "LinkHandler.Resolve", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}
