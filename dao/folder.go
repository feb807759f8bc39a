package dao

import (
	"Quill/models"
	"context"

	"gorm.io/gorm"
)

type Folder struct {
	Repo[models.Folder]
}

func NewFolder(db *gorm.DB) *Folder {
	return &Folder{
		Repo: NewRepo[models.Folder](db),
	}
}

// FindByVault vault 下的目录列表，按名称升序
func (d *Folder) FindByVault(ctx context.Context, vaultID uint64) ([]*models.Folder, error) {
	var folders []*models.Folder
	err := d.Db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

// FindScoped 按 (id, vault_id) 查询，跨 vault 的 id 等同于不存在
func (d *Folder) FindScoped(ctx context.Context, vaultID, folderID uint64) (*models.Folder, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND vault_id = ?", folderID, vaultID)
}

func (d *Folder) ExistsInVault(ctx context.Context, vaultID, folderID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "id = ? AND vault_id = ?", folderID, vaultID)
}

// NameExists 同一 (vault, parent) 下是否已有同名目录。
// parent 为 NULL 时部分引擎的唯一索引拦不住，所以插入前先查一遍。
func (d *Folder) NameExists(ctx context.Context, vaultID uint64, parentID *uint64, name string, excludeID uint64) (bool, error) {
	q := d.Db.WithContext(ctx).
		Model(&models.Folder{}).
		Where("vault_id = ? AND name = ?", vaultID, name)
	if parentID == nil {
		q = q.Where("parent_folder_id IS NULL")
	} else {
		q = q.Where("parent_folder_id = ?", *parentID)
	}
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Limit(1).Count(&count).Error
	return count > 0, err
}
