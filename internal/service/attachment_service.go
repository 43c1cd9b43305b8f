package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/storage/local_fs"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"
	"github.com/evanhugh/assistant-hub-service/pkg/util"

	"go.uber.org/zap"
)

// AttachmentService 定义附件业务服务接口。
// 附件内容存本地文件系统，仅所有者可见；附件挂在笔记上，
// 但不随笔记分享（分享授予的是笔记正文）。
type AttachmentService interface {
	// Upload 保存附件内容并登记元数据
	Upload(ctx context.Context, uid int64, noteID int64, fileName string, mimeType string, r io.Reader) (*dto.AttachmentDTO, error)

	// Download 返回附件内容与元数据
	Download(ctx context.Context, uid int64, id int64) ([]byte, *dto.AttachmentDTO, error)

	// Delete 删除附件内容与元数据
	Delete(ctx context.Context, uid int64, id int64) error

	// ListByNote 列出某笔记的全部附件
	ListByNote(ctx context.Context, uid int64, noteID int64) ([]*dto.AttachmentDTO, error)
}

// attachmentService 实现 AttachmentService 接口
type attachmentService struct {
	attachmentRepo domain.AttachmentRepository
	noteRepo       domain.NoteRepository
	storage        *local_fs.LocalFS
	logger         *zap.Logger
}

// NewAttachmentService 创建 AttachmentService 实例
func NewAttachmentService(attachmentRepo domain.AttachmentRepository, noteRepo domain.NoteRepository, storage *local_fs.LocalFS, logger *zap.Logger) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		noteRepo:       noteRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (s *attachmentService) domainToDTO(a *domain.Attachment) *dto.AttachmentDTO {
	if a == nil {
		return nil
	}
	return &dto.AttachmentDTO{
		ID:        a.ID,
		NoteID:    a.NoteID,
		FileName:  a.FileName,
		MimeType:  a.MimeType,
		Size:      a.Size,
		CreatedAt: timex.Time(a.CreatedAt),
	}
}

// fileKey 生成存储键：按用户和笔记分目录，随机后缀避免重名
func (s *attachmentService) fileKey(uid int64, noteID int64, fileName string) string {
	return filepath.Join(
		fmt.Sprintf("u_%d", uid),
		fmt.Sprintf("n_%d", noteID),
		util.GetRandomString(8)+"_"+filepath.Base(fileName),
	)
}

// Upload 保存附件内容并登记元数据，笔记必须属于当前用户
func (s *attachmentService) Upload(ctx context.Context, uid int64, noteID int64, fileName string, mimeType string, r io.Reader) (*dto.AttachmentDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UID != uid || note.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}

	key := s.fileKey(uid, noteID, fileName)
	size, err := s.storage.Save(key, r)
	if err != nil {
		return nil, err
	}

	att := &domain.Attachment{
		UID:       uid,
		NoteID:    noteID,
		FileName:  filepath.Base(fileName),
		FileKey:   key,
		MimeType:  mimeType,
		Size:      size,
		CreatedAt: time.Now(),
	}
	if err := s.attachmentRepo.Create(ctx, att); err != nil {
		// 元数据写入失败时回收已落盘的内容
		if delErr := s.storage.Delete(key); delErr != nil {
			s.logger.Warn("orphan attachment content left on disk",
				zap.String("fileKey", key), zap.Error(delErr))
		}
		return nil, err
	}
	return s.domainToDTO(att), nil
}

// Download 返回附件内容与元数据
func (s *attachmentService) Download(ctx context.Context, uid int64, id int64) ([]byte, *dto.AttachmentDTO, error) {
	att, err := s.attachmentRepo.GetByID(ctx, id, uid)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.storage.ReadAll(att.FileKey)
	if err != nil {
		return nil, nil, err
	}
	return content, s.domainToDTO(att), nil
}

// Delete 删除附件内容与元数据
func (s *attachmentService) Delete(ctx context.Context, uid int64, id int64) error {
	att, err := s.attachmentRepo.GetByID(ctx, id, uid)
	if err != nil {
		return err
	}
	if err := s.attachmentRepo.Delete(ctx, id, uid); err != nil {
		return err
	}
	if err := s.storage.Delete(att.FileKey); err != nil {
		s.logger.Warn("attachment content delete failed",
			zap.Int64("id", id), zap.String("fileKey", att.FileKey), zap.Error(err))
	}
	return nil
}

// ListByNote 列出某笔记的全部附件
func (s *attachmentService) ListByNote(ctx context.Context, uid int64, noteID int64) ([]*dto.AttachmentDTO, error) {
	atts, err := s.attachmentRepo.ListByNote(ctx, noteID, uid)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AttachmentDTO, 0, len(atts))
	for _, a := range atts {
		out = append(out, s.domainToDTO(a))
	}
	return out, nil
}
