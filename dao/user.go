package dao

import (
	"Quill/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询，email 已经是小写
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}
