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
	"gorm.io/gorm/clause"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	List(ctx context.Context, vaultID uint64) ([]*models.Tag, error)
	Get(ctx context.Context, vaultID, tagID uint64) (*models.Tag, error)
	Create(ctx context.Context, vaultID uint64, req *types.CreateTagRequest) (*models.Tag, error)
	Update(ctx context.Context, vaultID, tagID uint64, req *types.UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, vaultID, tagID uint64) error
	Reconcile(ctx context.Context, tx *gorm.DB, vaultID, noteID uint64, names []string) ([]string, error)
}

type TagService struct {
	DB         *gorm.DB
	TagDAO     *dao.Tag
	NoteTagDAO *dao.NoteTag
}

func (s *TagService) List(ctx context.Context, vaultID uint64) ([]*models.Tag, error) {
	return s.TagDAO.FindByVault(ctx, vaultID)
}

func (s *TagService) Get(ctx context.Context, vaultID, tagID uint64) (*models.Tag, error) {
	tag, err := s.TagDAO.FindScoped(ctx, vaultID, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("tag not found")
		}
		return nil, err
	}
	return tag, nil
}

// Create 幂等 upsert：重复提交同名标签拿回已有的那行，不报冲突
func (s *TagService) Create(ctx context.Context, vaultID uint64, req *types.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.ErrValidation("name required")
	}

	now := time.Now()
	tag := &models.Tag{
		ID:        uint64(snowflake.GenID()),
		VaultID:   vaultID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// 并发同名创建靠唯一索引兜底，输的一方复用赢家那行
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(tag).Error
	if err != nil {
		return nil, err
	}

	return s.TagDAO.FindByName(ctx, vaultID, name)
}

// Update 重命名，撞上已有名称返回冲突
func (s *TagService) Update(ctx context.Context, vaultID, tagID uint64, req *types.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.Get(ctx, vaultID, tagID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.ErrValidation("name required")
	}
	if name == tag.Name {
		return tag, nil
	}

	err = s.DB.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id = ? AND vault_id = ?", tagID, vaultID).
		Updates(map[string]any{"name": name, "updated_at": time.Now()}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("tag name already exists")
		}
		return nil, err
	}
	return s.Get(ctx, vaultID, tagID)
}

// Delete 删标签连同它在所有笔记上的关联，一个事务完成
func (s *TagService) Delete(ctx context.Context, vaultID, tagID uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND vault_id = ?", tagID, vaultID).Delete(&models.Tag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.ErrNotFound("tag not found")
		}
		return tx.Where("tag_id = ?", tagID).Delete(&models.NoteTag{}).Error
	})
}

// Reconcile 把笔记的标签关联对齐到提交的列表：全量替换，不是增量 diff。
// 在调用方的事务里执行，笔记写入失败时这里的改动一起回滚。
func (s *TagService) Reconcile(ctx context.Context, tx *gorm.DB, vaultID, noteID uint64, names []string) ([]string, error) {
	// 去空白、去重，保留第一次出现的顺序
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}

	if err := tx.Where("note_id = ?", noteID).Delete(&models.NoteTag{}).Error; err != nil {
		return nil, err
	}
	if len(cleaned) == 0 {
		return []string{}, nil
	}

	now := time.Now()
	rows := make([]*models.Tag, 0, len(cleaned))
	for _, name := range cleaned {
		rows = append(rows, &models.Tag{
			ID:        uint64(snowflake.GenID()),
			VaultID:   vaultID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	// 已存在的名字直接跳过，保住老的 tag id
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	var tags []*models.Tag
	if err := tx.Where("vault_id = ? AND name IN ?", vaultID, cleaned).Find(&tags).Error; err != nil {
		return nil, err
	}
	idByName := make(map[string]uint64, len(tags))
	for _, tag := range tags {
		idByName[tag.Name] = tag.ID
	}

	links := make([]*models.NoteTag, 0, len(cleaned))
	for _, name := range cleaned {
		id, ok := idByName[name]
		if !ok {
			return nil, response.ErrInternal("tag upsert lost row " + name)
		}
		links = append(links, &models.NoteTag{
			NoteID:    noteID,
			TagID:     id,
			CreatedAt: now,
		})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return nil, err
	}

	return cleaned, nil
}
