package models

import "time"

type Note struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	VaultID    uint64    `gorm:"column:vault_id;not null;index:idx_notes_vault" json:"vault_id"`
	FolderID   *uint64   `gorm:"column:folder_id;index:idx_notes_folder" json:"folder_id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	IsPinned   bool      `gorm:"column:is_pinned;not null;default:false" json:"is_pinned"`
	IsArchived bool      `gorm:"column:is_archived;not null;default:false" json:"is_archived"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;index:idx_notes_updated" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
