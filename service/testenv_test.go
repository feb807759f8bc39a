package service

import (
	"context"
	"errors"
	"testing"

	"Quill/config"
	"Quill/dao"
	"Quill/models"
	"Quill/pkg/response"
	"Quill/types"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库和连接绑定，多开连接会各拿一个空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Vault{},
		&models.Folder{},
		&models.Note{},
		&models.Tag{},
		&models.NoteTag{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db      *gorm.DB
	auth    *AuthService
	guard   *VaultGuard
	vaults  *VaultService
	folders *FolderService
	notes   *NoteService
	tags    *TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	cfg := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Jwt: &config.Jwt{Secret: "test-secret", ExpireHour: 1},
	}

	usersDAO := dao.NewUsers(db)
	vaultDAO := dao.NewVault(db)
	folderDAO := dao.NewFolder(db)
	noteDAO := dao.NewNoteDAO(db)
	tagDAO := dao.NewTag(db)
	noteTagDAO := dao.NewNoteTag(db)

	tags := &TagService{DB: db, TagDAO: tagDAO, NoteTagDAO: noteTagDAO}

	return &testEnv{
		db:      db,
		auth:    &AuthService{Config: cfg, DB: db, Users: usersDAO},
		guard:   &VaultGuard{VaultDAO: vaultDAO},
		vaults:  &VaultService{DB: db, VaultDAO: vaultDAO},
		folders: &FolderService{DB: db, FolderDAO: folderDAO},
		notes:   &NoteService{DB: db, NoteDAO: noteDAO, FolderDAO: folderDAO, NoteTagDAO: noteTagDAO, TagService: tags},
		tags:    tags,
	}
}

// registerUser 注册并返回 (user, 默认 vault)
func (e *testEnv) registerUser(t *testing.T, email string) (*models.User, *models.Vault) {
	t.Helper()
	user, err := e.auth.Register(context.Background(), email, "Passw0rd!")
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	var vault models.Vault
	if err := e.db.Where("user_id = ?", user.ID).First(&vault).Error; err != nil {
		t.Fatalf("default vault for %s: %v", email, err)
	}
	return user, &vault
}

func optVal[T any](v T) types.Optional[T] {
	return types.Optional[T]{Set: true, Valid: true, Value: v}
}

func optNull[T any]() types.Optional[T] {
	return types.Optional[T]{Set: true}
}

func assertBizCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", code)
	}
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected biz error, got %v", err)
	}
	if be.Code != code {
		t.Fatalf("expected code %d, got %d (%s)", code, be.Code, be.Msg)
	}
}
