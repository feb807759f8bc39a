package dao

import (
	"Quill/models"
	"context"

	"gorm.io/gorm"
)

type Tag struct {
	Repo[models.Tag]
}

type NoteTag struct {
	Repo[models.NoteTag]
}

func NewTag(db *gorm.DB) *Tag {
	return &Tag{
		Repo: NewRepo[models.Tag](db),
	}
}

func NewNoteTag(db *gorm.DB) *NoteTag {
	return &NoteTag{
		Repo: NewRepo[models.NoteTag](db),
	}
}

// FindByVault vault 下的标签列表，按名称升序
func (d *Tag) FindByVault(ctx context.Context, vaultID uint64) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("name ASC").
		Find(&tags).Error
	return tags, err
}

func (d *Tag) FindScoped(ctx context.Context, vaultID, tagID uint64) (*models.Tag, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND vault_id = ?", tagID, vaultID)
}

// FindByName (vault_id, name) 精确查询，不存在返回 gorm.ErrRecordNotFound
func (d *Tag) FindByName(ctx context.Context, vaultID uint64, name string) (*models.Tag, error) {
	return d.Repo.FindByWhere(ctx, "vault_id = ? AND name = ?", vaultID, name)
}

// NamesByNoteID 笔记当前关联的标签名，按名称升序
func (d *NoteTag) NamesByNoteID(ctx context.Context, noteID uint64) ([]string, error) {
	var names []string
	err := d.Db.WithContext(ctx).
		Model(&models.NoteTag{}).
		Joins("INNER JOIN tags ON tags.id = note_tags.tag_id").
		Where("note_tags.note_id = ?", noteID).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	return names, err
}
