package service

import (
	"Quill/dao"
	"Quill/models"
	"Quill/pkg/response"
	"Quill/pkg/snowflake"
	"Quill/types"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	List(ctx context.Context, vaultID uint64) ([]*types.NoteSummary, error)
	Get(ctx context.Context, vaultID, noteID uint64) (*types.NoteDetail, error)
	Create(ctx context.Context, vaultID uint64, req *types.CreateNoteRequest) (*types.NoteDetail, error)
	Update(ctx context.Context, vaultID, noteID uint64, req *types.UpdateNoteRequest) (*types.NoteDetail, error)
	Delete(ctx context.Context, vaultID, noteID uint64) error
}

type NoteService struct {
	DB         *gorm.DB
	NoteDAO    *dao.NoteDAO
	FolderDAO  *dao.Folder
	NoteTagDAO *dao.NoteTag
	TagService ITagService
}

func (s *NoteService) List(ctx context.Context, vaultID uint64) ([]*types.NoteSummary, error) {
	notes, err := s.NoteDAO.FindByVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	summaries := make([]*types.NoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, &types.NoteSummary{
			ID:         note.ID,
			FolderID:   note.FolderID,
			Title:      note.Title,
			IsPinned:   note.IsPinned,
			IsArchived: note.IsArchived,
			CreatedAt:  note.CreatedAt,
			UpdatedAt:  note.UpdatedAt,
		})
	}
	return summaries, nil
}

func (s *NoteService) Get(ctx context.Context, vaultID, noteID uint64) (*types.NoteDetail, error) {
	note, err := s.NoteDAO.FindScoped(ctx, vaultID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("note not found")
		}
		return nil, err
	}
	tags, err := s.NoteTagDAO.NamesByNoteID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return noteDetail(note, tags), nil
}

// Create 写笔记和对齐标签在同一个事务里，标签那步失败笔记也不会落库
func (s *NoteService) Create(ctx context.Context, vaultID uint64, req *types.CreateNoteRequest) (*types.NoteDetail, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.ErrValidation("title required")
	}
	if err := s.checkFolder(ctx, vaultID, req.FolderID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &models.Note{
		ID:        uint64(snowflake.GenID()),
		VaultID:   vaultID,
		FolderID:  req.FolderID,
		Title:     title,
		Content:   req.Content,
		IsPinned:  req.IsPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	applied := []string{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		if len(req.Tags) > 0 {
			var err error
			applied, err = s.TagService.Reconcile(ctx, tx, vaultID, note.ID, req.Tags)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return noteDetail(note, applied), nil
}

func (s *NoteService) Update(ctx context.Context, vaultID, noteID uint64, req *types.UpdateNoteRequest) (*types.NoteDetail, error) {
	if _, err := s.NoteDAO.FindScoped(ctx, vaultID, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("note not found")
		}
		return nil, err
	}

	updates := map[string]any{}

	if req.Title.Set {
		if !req.Title.Valid {
			return nil, response.ErrValidation("title cannot be null")
		}
		title := strings.TrimSpace(req.Title.Value)
		if title == "" {
			return nil, response.ErrValidation("title required")
		}
		updates["title"] = title
	}
	if req.Content.Set {
		// 显式 null 等同清空正文
		content := ""
		if req.Content.Valid {
			content = req.Content.Value
		}
		updates["content"] = content
	}
	if req.FolderID.Set {
		if !req.FolderID.Valid {
			updates["folder_id"] = nil
		} else {
			folderID := req.FolderID.Value
			if err := s.checkFolder(ctx, vaultID, &folderID); err != nil {
				return nil, err
			}
			updates["folder_id"] = folderID
		}
	}
	if req.IsPinned.Set && req.IsPinned.Valid {
		updates["is_pinned"] = req.IsPinned.Value
	}
	if req.IsArchived.Set && req.IsArchived.Valid {
		updates["is_archived"] = req.IsArchived.Value
	}

	// tags 字段没传（或传了 null）不碰关联；传了数组才对齐，空数组就是清空
	reconcileTags := req.Tags.Set && req.Tags.Valid

	if len(updates) == 0 && !reconcileTags {
		return s.Get(ctx, vaultID, noteID)
	}
	updates["updated_at"] = time.Now()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Note{}).
			Where("id = ? AND vault_id = ?", noteID, vaultID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.ErrNotFound("note not found")
		}
		if reconcileTags {
			if _, err := s.TagService.Reconcile(ctx, tx, vaultID, noteID, req.Tags.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, vaultID, noteID)
}

func (s *NoteService) Delete(ctx context.Context, vaultID, noteID uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND vault_id = ?", noteID, vaultID).Delete(&models.Note{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.ErrNotFound("note not found")
		}
		return tx.Where("note_id = ?", noteID).Delete(&models.NoteTag{}).Error
	})
}

// checkFolder 引用的目录必须在同一个 vault 里，跨 vault 是参数错误不是 404
func (s *NoteService) checkFolder(ctx context.Context, vaultID uint64, folderID *uint64) error {
	if folderID == nil {
		return nil
	}
	ok, err := s.FolderDAO.ExistsInVault(ctx, vaultID, *folderID)
	if err != nil {
		return err
	}
	if !ok {
		return response.ErrValidation("invalid folder")
	}
	return nil
}

func noteDetail(note *models.Note, tags []string) *types.NoteDetail {
	if tags == nil {
		tags = []string{}
	}
	return &types.NoteDetail{
		ID:         note.ID,
		VaultID:    note.VaultID,
		FolderID:   note.FolderID,
		Title:      note.Title,
		Content:    note.Content,
		IsPinned:   note.IsPinned,
		IsArchived: note.IsArchived,
		Tags:       tags,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}
