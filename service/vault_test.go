package service

import (
	"context"
	"net/http"
	"testing"

	"Quill/models"
	"Quill/types"
)

func TestVaultCreate_AndList(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.registerUser(t, "alice@example.com")

	work, err := env.vaults.Create(context.Background(), user.ID, &types.CreateVaultRequest{Name: "Work"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if work.Title != "Work" {
		t.Fatalf("title should fall back to name, got %q", work.Title)
	}

	_, err = env.vaults.Create(context.Background(), user.ID, &types.CreateVaultRequest{Name: "Work"})
	assertBizCode(t, err, http.StatusConflict)

	// 不同用户可以各有自己的 Work
	other, _ := env.registerUser(t, "bob@example.com")
	if _, err := env.vaults.Create(context.Background(), other.ID, &types.CreateVaultRequest{Name: "Work"}); err != nil {
		t.Fatalf("other user create: %v", err)
	}

	vaults, err := env.vaults.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vaults) != 2 {
		t.Fatalf("expected 2 vaults, got %d", len(vaults))
	}
	// 创建时间升序，Default 在前
	if vaults[0].Name != "Default" || vaults[1].Name != "Work" {
		t.Fatalf("order = %q, %q", vaults[0].Name, vaults[1].Name)
	}
}

func TestVaultDelete_Cascades(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")
	_, survivor := env.registerUser(t, "bob@example.com")

	folder, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "docs"})
	env.notes.Create(context.Background(), vault.ID, &types.CreateNoteRequest{
		Title:    "n",
		FolderID: &folder.ID,
		Tags:     []string{"a", "b"},
	})
	keep, _ := env.notes.Create(context.Background(), survivor.ID, &types.CreateNoteRequest{
		Title: "other",
		Tags:  []string{"a"},
	})

	if err := env.vaults.Delete(context.Background(), vault.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, probe := range []struct {
		model any
		desc  string
	}{
		{&models.Note{}, "notes"},
		{&models.Folder{}, "folders"},
		{&models.Tag{}, "tags"},
	} {
		var count int64
		if err := env.db.Model(probe.model).Where("vault_id = ?", vault.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", probe.desc, err)
		}
		if count != 0 {
			t.Fatalf("%s should be gone, got %d", probe.desc, count)
		}
	}

	var vaultCount int64
	env.db.Model(&models.Vault{}).Where("id = ?", vault.ID).Count(&vaultCount)
	if vaultCount != 0 {
		t.Fatal("vault row should be gone")
	}

	// 别的 vault 的数据不受影响
	detail, err := env.notes.Get(context.Background(), survivor.ID, keep.ID)
	if err != nil {
		t.Fatalf("survivor note: %v", err)
	}
	if len(detail.Tags) != 1 || detail.Tags[0] != "a" {
		t.Fatalf("survivor tags = %v", detail.Tags)
	}

	err = env.vaults.Delete(context.Background(), vault.ID)
	assertBizCode(t, err, http.StatusNotFound)
}
