package service

import (
	"context"
	"net/http"
	"testing"

	"Quill/models"
	"Quill/pkg/jwt"
	"Quill/pkg/response"
)

func TestRegister_CreatesDefaultVault(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(context.Background(), "  Alice@Example.com ", "Passw0rd!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}

	var vaults []models.Vault
	if err := env.db.Where("user_id = ?", user.ID).Find(&vaults).Error; err != nil {
		t.Fatalf("find vaults: %v", err)
	}
	if len(vaults) != 1 {
		t.Fatalf("expected exactly one default vault, got %d", len(vaults))
	}
	if vaults[0].Name != "Default" {
		t.Fatalf("expected default vault name Default, got %q", vaults[0].Name)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.Register(context.Background(), "alice@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := env.auth.Register(context.Background(), "ALICE@example.com", "Passw0rd!")
	assertBizCode(t, err, http.StatusConflict)

	// 冲突的那次注册不能留下半截数据
	var count int64
	if err := env.db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.Register(context.Background(), "", "Passw0rd!"); err == nil {
		t.Fatal("expected error for empty email")
	}
	_, err := env.auth.Register(context.Background(), "not-an-email", "Passw0rd!")
	assertBizCode(t, err, http.StatusBadRequest)

	_, err = env.auth.Register(context.Background(), "bob@example.com", "short")
	assertBizCode(t, err, http.StatusBadRequest)
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.registerUser(t, "alice@example.com")

	token, err := env.auth.Login(context.Background(), "Alice@Example.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := jwt.ParseToken([]byte("test-secret"), token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token user id %d != %d", claims.UserID, user.ID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("token email %q", claims.Email)
	}
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice@example.com")

	_, errWrongPassword := env.auth.Login(context.Background(), "alice@example.com", "wrong-password")
	_, errUnknownEmail := env.auth.Login(context.Background(), "nobody@example.com", "Passw0rd!")

	assertBizCode(t, errWrongPassword, http.StatusUnauthorized)
	assertBizCode(t, errUnknownEmail, http.StatusUnauthorized)

	be1 := errWrongPassword.(*response.BizError)
	be2 := errUnknownEmail.(*response.BizError)
	if be1.Code != be2.Code || be1.Msg != be2.Msg {
		t.Fatalf("credential failures distinguishable: %+v vs %+v", be1, be2)
	}
}
