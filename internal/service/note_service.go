package service

import (
	"context"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/access"
	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// Create 创建笔记
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Get 获取单条笔记，经过访问决策引擎
	Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error)

	// Update 更新笔记，需要写权限
	Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 软删除笔记，owner-only
	Delete(ctx context.Context, uid int64, id int64) error

	// Restore 恢复软删除的笔记，owner-only 的独立路径，不经过常规授权检查
	Restore(ctx context.Context, uid int64, id int64) error

	// List 分页列出用户自己的笔记
	List(ctx context.Context, uid int64, offset, limit int) ([]*dto.NoteDTO, int64, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	engine   *access.Engine
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, engine *access.Engine, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		engine:   engine,
		logger:   logger,
	}
}

func (s *noteService) domainToDTO(note *domain.Note, permission domain.SharePermission) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:         note.ID,
		UID:        note.UID,
		NotebookID: note.NotebookID,
		Title:      note.Title,
		Content:    note.Content,
		Visibility: string(note.Visibility),
		Permission: string(permission),
		CreatedAt:  timex.Time(note.CreatedAt),
		UpdatedAt:  timex.Time(note.UpdatedAt),
	}
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	visibility := domain.Visibility(params.Visibility)
	if params.Visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	now := time.Now()
	note := &domain.Note{
		UID:        uid,
		NotebookID: params.NotebookID,
		Title:      params.Title,
		Content:    params.Content,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return s.domainToDTO(note, domain.PermissionReadWrite), nil
}

// Get 获取单条笔记
func (s *noteService) Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNote, id, access.OperationRead)
	if err != nil {
		return nil, err
	}
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(note, grant.Permission), nil
}

// Update 更新笔记
func (s *noteService) Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	grant, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNote, id, access.OperationWrite)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.NotebookID != nil {
		note.NotebookID = *params.NotebookID
	}
	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.Visibility != nil {
		// 可见性变更属于分享管理，owner-only
		if !grant.IsOwner {
			return nil, domain.ErrForbidden
		}
		note.Visibility = domain.Visibility(*params.Visibility)
	}
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return s.domainToDTO(note, grant.Permission), nil
}

// Delete 软删除笔记
func (s *noteService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.engine.Authorize(ctx, uid, domain.ResourceTypeNote, id, access.OperationDelete); err != nil {
		return err
	}
	return s.noteRepo.SoftDelete(ctx, id, time.Now())
}

// Restore 恢复软删除的笔记。软删除资源对常规授权不可见，
// 这里直接检查所有权。
func (s *noteService) Restore(ctx context.Context, uid int64, id int64) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note.UID != uid {
		return domain.ErrNotFound
	}
	if note.DeletedAt == nil {
		return nil
	}
	s.logger.Info("note restored", zap.Int64("uid", uid), zap.Int64("noteId", id))
	return s.noteRepo.Restore(ctx, id)
}

// List 分页列出用户自己的笔记
func (s *noteService) List(ctx context.Context, uid int64, offset, limit int) ([]*dto.NoteDTO, int64, error) {
	notes, err := s.noteRepo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.noteRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, s.domainToDTO(n, domain.PermissionReadWrite))
	}
	return out, total, nil
}
