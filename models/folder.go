package models

import "time"

// Folder 目录树节点，parent 为空表示根目录
type Folder struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	VaultID uint64 `gorm:"column:vault_id;uniqueIndex:uk_folders_scope;index:idx_folders_vault;not null" json:"vault_id"`
	// (vault_id, parent_folder_id, name) 联合唯一
	ParentFolderID *uint64 `gorm:"column:parent_folder_id;uniqueIndex:uk_folders_scope" json:"parent_folder_id"`
	Name           string  `gorm:"column:name;type:varchar(64);uniqueIndex:uk_folders_scope;not null" json:"name"`
	Title          string  `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Folder) TableName() string {
	return "folders"
}
