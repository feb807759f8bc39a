package models

import "time"

// Tag 标签按 vault 隔离，不是全局的：A vault 的 "work" 和 B vault 的 "work" 是两行
type Tag struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	VaultID uint64 `gorm:"column:vault_id;uniqueIndex:uk_tags_vault_name;not null" json:"vault_id"`
	Name    string `gorm:"column:name;type:varchar(64);uniqueIndex:uk_tags_vault_name;not null" json:"name"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// NoteTag 笔记与标签的中间表
type NoteTag struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	// 联合唯一索引：确保 (note_id, tag_id) 组合唯一
	NoteID uint64 `gorm:"uniqueIndex:uk_note_tag;not null" json:"note_id"`
	TagID  uint64 `gorm:"uniqueIndex:uk_note_tag;not null;index:idx_note_tags_tag" json:"tag_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
