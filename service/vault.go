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

var _ IVaultService = (*VaultService)(nil)

type IVaultService interface {
	List(ctx context.Context, userID uint64) ([]*models.Vault, error)
	Create(ctx context.Context, userID uint64, req *types.CreateVaultRequest) (*models.Vault, error)
	Delete(ctx context.Context, vaultID uint64) error
}

type VaultService struct {
	DB       *gorm.DB
	VaultDAO *dao.Vault
}

func (s *VaultService) List(ctx context.Context, userID uint64) ([]*models.Vault, error) {
	return s.VaultDAO.FindByOwner(ctx, userID)
}

func (s *VaultService) Create(ctx context.Context, userID uint64, req *types.CreateVaultRequest) (*models.Vault, error) {
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

	now := time.Now()
	vault := &models.Vault{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Name:      name,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.VaultDAO.Create(ctx, vault); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("vault name already exists")
		}
		return nil, err
	}
	return vault, nil
}

// Delete 删除 vault 并级联清掉下面的所有资源，一个事务完成
func (s *VaultService) Delete(ctx context.Context, vaultID uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var noteIDs []uint64
		if err := tx.Model(&models.Note{}).
			Where("vault_id = ?", vaultID).
			Pluck("id", &noteIDs).Error; err != nil {
			return err
		}
		if len(noteIDs) > 0 {
			if err := tx.Where("note_id IN ?", noteIDs).Delete(&models.NoteTag{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("vault_id = ?", vaultID).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vault_id = ?", vaultID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vault_id = ?", vaultID).Delete(&models.Folder{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", vaultID).Delete(&models.Vault{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.ErrNotFound("vault not found")
		}
		return nil
	})
}
