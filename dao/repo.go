package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 各 DAO 嵌入的通用查询能力
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(query, args...).Limit(1).Count(&count).Error
	return count > 0, err
}
