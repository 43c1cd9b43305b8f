package api_router

import (
	"net/http"

	"github.com/evanhugh/assistant-hub-service/internal/app"
	pkgapp "github.com/evanhugh/assistant-hub-service/pkg/app"
	"github.com/evanhugh/assistant-hub-service/pkg/code"
	"github.com/evanhugh/assistant-hub-service/pkg/convert"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler 附件 API 路由处理器。
// 附件内容走本地文件系统存储，元数据走数据库；附件仅所有者可见。
type AttachmentHandler struct {
	*Handler
}

// NewAttachmentHandler 创建 AttachmentHandler 实例
func NewAttachmentHandler(a *app.App) *AttachmentHandler {
	return &AttachmentHandler{
		Handler: NewHandler(a),
	}
}

// Upload 上传附件（multipart），挂在指定笔记上
// @Router /api/notes/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	noteID, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ToResponse(code.ErrorAttachmentSaveFailed.WithDetails(err.Error()))
		return
	}
	defer file.Close()

	uid := pkgapp.GetUID(c)
	out, err := h.App.AttachmentService.Upload(c.Request.Context(), uid, noteID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.errorResponse(c, "AttachmentHandler.Upload", err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(out))
}

// Download 下载附件内容
// @Router /api/attachments/{id}/content [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	content, meta, err := h.App.AttachmentService.Download(c.Request.Context(), uid, id)
	if err != nil {
		h.errorResponse(c, "AttachmentHandler.Download", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+meta.FileName+`"`)
	c.Data(http.StatusOK, meta.MimeType, content)
}

// Delete 删除附件（内容与元数据）
// @Router /api/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	if err := h.App.AttachmentService.Delete(c.Request.Context(), uid, id); err != nil {
		h.errorResponse(c, "AttachmentHandler.Delete", err)
		return
	}

	response.ToResponse(code.SuccessDeleted)
}

// ListByNote 列出某笔记的全部附件
// @Router /api/notes/{id}/attachments [get]
func (h *AttachmentHandler) ListByNote(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	noteID, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	uid := pkgapp.GetUID(c)
	out, err := h.App.AttachmentService.ListByNote(c.Request.Context(), uid, noteID)
	if err != nil {
		h.errorResponse(c, "AttachmentHandler.ListByNote", err)
		return
	}

	response.ToResponse(code.Success.WithData(out))
}
