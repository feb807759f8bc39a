package dao

import (
	"Quill/models"
	"context"

	"gorm.io/gorm"
)

type Vault struct {
	Repo[models.Vault]
}

func NewVault(db *gorm.DB) *Vault {
	return &Vault{
		Repo: NewRepo[models.Vault](db),
	}
}

// IsOwnedBy 鉴权用的那条查询：vault 存在且属于该用户
func (d *Vault) IsOwnedBy(ctx context.Context, vaultID, userID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "id = ? AND user_id = ?", vaultID, userID)
}

// FindByOwner 用户的 vault 列表，按创建时间升序
func (d *Vault) FindByOwner(ctx context.Context, userID uint64) ([]*models.Vault, error) {
	var vaults []*models.Vault
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&vaults).Error
	return vaults, err
}
