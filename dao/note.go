package dao

import (
	"Quill/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// FindByVault vault 下的笔记列表，置顶优先，其余按更新时间倒序
func (d *NoteDAO) FindByVault(ctx context.Context, vaultID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("is_pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (d *NoteDAO) FindScoped(ctx context.Context, vaultID, noteID uint64) (*models.Note, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND vault_id = ?", noteID, vaultID)
}
