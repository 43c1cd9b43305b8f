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

// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Create creates a note
// @Summary Create note
// @Tags Note
// @Security UserAuthToken
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "Note Parameters"
// @Success 201 {object} pkgapp.Res{data=dto.NoteDTO} "Created"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	noteDTO, err := h.App.NoteService.Create(c.Request.Context(), uid, params)
	if err != nil {
		h.errorResponse(c, "NoteHandler.Create", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(noteDTO))
}

// Get retrieves a single note. Access is decided by the authorization
// engine: owner, public visibility or an active share may grant it.
// Get 获取单条笔记，授权由访问决策引擎判定：所有者、公开可见性或
// 生效的分享都可能授予访问。
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	noteDTO, err := h.App.NoteService.Get(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "NoteHandler.Get", err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Update 更新笔记，需要写权限；可见性变更仅所有者可操作
// @Router /api/notes/{id} [patch]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	noteDTO, err := h.App.NoteService.Update(c.Request.Context(), uid, id, params)
	if err != nil {
		h.errorResponse(c, "NoteHandler.Update", err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Delete 软删除笔记，owner-only
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.NoteService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "NoteHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// Restore 恢复软删除的笔记，owner-only
// @Router /api/notes/{id}/restore [put]
func (h *NoteHandler) Restore(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.NoteService.Restore(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "NoteHandler.Restore", err)
		return
	}

	response.ToResponse(code.Success)
}

// List 分页列出当前用户的笔记
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSize(c)

	notes, total, err := h.App.NoteService.List(c.Request.Context(), uid,
		pkgapp.GetPageOffset(page, pageSize), pageSize)
	if err != nil {
		h.errorResponse(c, "NoteHandler.List", err)
		return
	}

	response.ToResponseList(code.Success, notes, int(total))
}
