package service

import (
	"Quill/config"
	"Quill/dao"
	"Quill/models"
	"Quill/pkg/encrypt"
	"Quill/pkg/jwt"
	"Quill/pkg/response"
	"Quill/pkg/snowflake"
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthService struct {
	Config *config.Config
	DB     *gorm.DB
	Users  *dao.Users
}

// 查不到用户时也跑一次 bcrypt，让两种失败耗时接近
var dummyDigest = encrypt.HashPassword("quill-dummy-password")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 注册用户，同一个事务里建好默认 vault
// 密码策略：最少 8 位（与线上行为保持一致，不做字符类别要求）
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, response.ErrValidation("email and password required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, response.ErrValidation("invalid email")
	}
	if len(password) < 8 {
		return nil, response.ErrValidation("password must be at least 8 chars")
	}

	now := time.Now()
	user := &models.User{
		ID:        uint64(snowflake.GenID()),
		Email:     email,
		Password:  encrypt.HashPassword(password),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		vault := &models.Vault{
			ID:        uint64(snowflake.GenID()),
			UserID:    user.ID,
			Name:      "Default",
			Title:     "Default",
			CreatedAt: now,
			UpdatedAt: now,
		}
		return tx.Create(vault).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("email already exists")
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理，账号不存在和密码错误对调用方不可区分
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", response.ErrValidation("email and password required")
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			encrypt.VerifyPassword(dummyDigest, password)
			return "", response.ErrInvalidCredentials()
		}
		return "", err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return "", response.ErrInvalidCredentials()
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Email, s.Config.Jwt.Expire())
	if err != nil {
		return "", err
	}
	return token, nil
}
