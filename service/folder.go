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

var _ IFolderService = (*FolderService)(nil)

type IFolderService interface {
	List(ctx context.Context, vaultID uint64) ([]*models.Folder, error)
	Get(ctx context.Context, vaultID, folderID uint64) (*models.Folder, error)
	Create(ctx context.Context, vaultID uint64, req *types.CreateFolderRequest) (*models.Folder, error)
	Update(ctx context.Context, vaultID, folderID uint64, req *types.UpdateFolderRequest) (*models.Folder, error)
	Delete(ctx context.Context, vaultID, folderID uint64) error
}

type FolderService struct {
	DB        *gorm.DB
	FolderDAO *dao.Folder
}

func (s *FolderService) List(ctx context.Context, vaultID uint64) ([]*models.Folder, error) {
	return s.FolderDAO.FindByVault(ctx, vaultID)
}

func (s *FolderService) Get(ctx context.Context, vaultID, folderID uint64) (*models.Folder, error) {
	folder, err := s.FolderDAO.FindScoped(ctx, vaultID, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("folder not found")
		}
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) Create(ctx context.Context, vaultID uint64, req *types.CreateFolderRequest) (*models.Folder, error) {
	// name 和 title 互相兜底，和旧接口行为一致
	name := strings.TrimSpace(req.Name)
	title := strings.TrimSpace(req.Title)
	if name == "" {
		name = title
	}
	if title == "" {
		title = name
	}
	if name == "" {
		return nil, response.ErrValidation("name required")
	}

	// parent 必须在同一个 vault 里
	if req.ParentFolderID != nil {
		ok, err := s.FolderDAO.ExistsInVault(ctx, vaultID, *req.ParentFolderID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, response.ErrValidation("invalid parent folder")
		}
	}

	exists, err := s.FolderDAO.NameExists(ctx, vaultID, req.ParentFolderID, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.ErrConflict("folder name already exists at this level")
	}

	now := time.Now()
	folder := &models.Folder{
		ID:             uint64(snowflake.GenID()),
		VaultID:        vaultID,
		ParentFolderID: req.ParentFolderID,
		Name:           name,
		Title:          title,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.FolderDAO.Create(ctx, folder); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("folder name already exists at this level")
		}
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) Update(ctx context.Context, vaultID, folderID uint64, req *types.UpdateFolderRequest) (*models.Folder, error) {
	folder, err := s.Get(ctx, vaultID, folderID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if req.Name.Set {
		if !req.Name.Valid {
			return nil, response.ErrValidation("name cannot be null")
		}
		name := strings.TrimSpace(req.Name.Value)
		if name == "" {
			return nil, response.ErrValidation("name required")
		}
		updates["name"] = name
	}
	if req.Title.Set {
		if !req.Title.Valid {
			return nil, response.ErrValidation("title cannot be null")
		}
		updates["title"] = strings.TrimSpace(req.Title.Value)
	}

	newParent := folder.ParentFolderID
	if req.ParentFolderID.Set {
		if !req.ParentFolderID.Valid {
			// 显式 null：挪到根目录
			newParent = nil
		} else {
			parentID := req.ParentFolderID.Value
			if parentID == folderID {
				return nil, response.ErrValidation("folder cannot be its own parent")
			}
			ok, err := s.FolderDAO.ExistsInVault(ctx, vaultID, parentID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, response.ErrValidation("invalid parent folder")
			}
			if err := s.assertNotDescendant(ctx, vaultID, folderID, parentID); err != nil {
				return nil, err
			}
			newParent = &parentID
		}
		updates["parent_folder_id"] = newParent
	}

	if len(updates) == 0 {
		return folder, nil
	}

	name := folder.Name
	if v, ok := updates["name"]; ok {
		name = v.(string)
	}
	exists, err := s.FolderDAO.NameExists(ctx, vaultID, newParent, name, folderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.ErrConflict("folder name already exists at this level")
	}

	updates["updated_at"] = time.Now()
	err = s.DB.WithContext(ctx).
		Model(&models.Folder{}).
		Where("id = ? AND vault_id = ?", folderID, vaultID).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("folder name already exists at this level")
		}
		return nil, err
	}

	return s.Get(ctx, vaultID, folderID)
}

// assertNotDescendant 沿着候选 parent 的祖先链往上走，走到自己就说明成环了。
// 现存的树是无环的，所以最多走 vault 里的目录数就会到根。
func (s *FolderService) assertNotDescendant(ctx context.Context, vaultID, folderID, parentID uint64) error {
	cur := parentID
	seen := map[uint64]bool{}
	for {
		if cur == folderID {
			return response.ErrValidation("folder cannot be moved into its own subtree")
		}
		if seen[cur] {
			return response.ErrValidation("folder tree is corrupted")
		}
		seen[cur] = true

		node, err := s.FolderDAO.FindScoped(ctx, vaultID, cur)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrValidation("invalid parent folder")
			}
			return err
		}
		if node.ParentFolderID == nil {
			return nil
		}
		cur = *node.ParentFolderID
	}
}

// Delete 删目录：子目录挂到被删目录的 parent 上，笔记回到根，一个事务完成
func (s *FolderService) Delete(ctx context.Context, vaultID, folderID uint64) error {
	folder, err := s.Get(ctx, vaultID, folderID)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Note{}).
			Where("vault_id = ? AND folder_id = ?", vaultID, folderID).
			Update("folder_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Folder{}).
			Where("vault_id = ? AND parent_folder_id = ?", vaultID, folderID).
			Update("parent_folder_id", folder.ParentFolderID).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND vault_id = ?", folderID, vaultID).Delete(&models.Folder{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.ErrNotFound("folder not found")
		}
		return nil
	})
}
