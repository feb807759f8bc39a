package service

import (
	"context"
	"net/http"
	"testing"

	"Quill/models"
	"Quill/types"
)

func TestFolderCreate_NameTitleCoalesce(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	byName, err := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "Projects"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if byName.Title != "Projects" {
		t.Fatalf("title should fall back to name, got %q", byName.Title)
	}

	byTitle, err := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Title: "Archive"})
	if err != nil {
		t.Fatalf("create by title: %v", err)
	}
	if byTitle.Name != "Archive" {
		t.Fatalf("name should fall back to title, got %q", byTitle.Name)
	}

	_, err = env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{})
	assertBizCode(t, err, http.StatusBadRequest)
}

func TestFolderCreate_DuplicateNameSameLevel(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	parent, err := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "docs"})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	_, err = env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "docs"})
	assertBizCode(t, err, http.StatusConflict)

	// 同名但挂在不同 parent 下可以
	if _, err := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "docs", ParentFolderID: &parent.ID}); err != nil {
		t.Fatalf("nested same name: %v", err)
	}
}

func TestFolderCreate_ParentMustBeSameVault(t *testing.T) {
	env := newTestEnv(t)
	_, vaultA := env.registerUser(t, "alice@example.com")
	_, vaultB := env.registerUser(t, "bob@example.com")

	parent, err := env.folders.Create(context.Background(), vaultA.ID, &types.CreateFolderRequest{Name: "docs"})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	_, err = env.folders.Create(context.Background(), vaultB.ID, &types.CreateFolderRequest{Name: "leak", ParentFolderID: &parent.ID})
	assertBizCode(t, err, http.StatusBadRequest)
}

func TestFolderUpdate_CycleRejected(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	a, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "a"})
	b, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "b", ParentFolderID: &a.ID})
	c, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "c", ParentFolderID: &b.ID})

	// 自己做自己的 parent
	_, err := env.folders.Update(context.Background(), vault.ID, a.ID, &types.UpdateFolderRequest{
		ParentFolderID: optVal(a.ID),
	})
	assertBizCode(t, err, http.StatusBadRequest)

	// 挪进自己的子树
	_, err = env.folders.Update(context.Background(), vault.ID, a.ID, &types.UpdateFolderRequest{
		ParentFolderID: optVal(c.ID),
	})
	assertBizCode(t, err, http.StatusBadRequest)

	// 合法的平移
	updated, err := env.folders.Update(context.Background(), vault.ID, c.ID, &types.UpdateFolderRequest{
		ParentFolderID: optVal(a.ID),
	})
	if err != nil {
		t.Fatalf("reparent: %v", err)
	}
	if updated.ParentFolderID == nil || *updated.ParentFolderID != a.ID {
		t.Fatalf("parent not updated: %+v", updated.ParentFolderID)
	}
}

func TestFolderUpdate_NullParentMovesToRoot(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	a, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "a"})
	b, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "b", ParentFolderID: &a.ID})

	updated, err := env.folders.Update(context.Background(), vault.ID, b.ID, &types.UpdateFolderRequest{
		ParentFolderID: optNull[uint64](),
	})
	if err != nil {
		t.Fatalf("move to root: %v", err)
	}
	if updated.ParentFolderID != nil {
		t.Fatalf("expected root folder, got parent %d", *updated.ParentFolderID)
	}
}

func TestFolderUpdate_RenameConflictAtTargetLevel(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "docs"})
	other, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "misc"})

	_, err := env.folders.Update(context.Background(), vault.ID, other.ID, &types.UpdateFolderRequest{
		Name: optVal("docs"),
	})
	assertBizCode(t, err, http.StatusConflict)
}

func TestFolderDelete_ReparentsChildrenAndOrphansNotes(t *testing.T) {
	env := newTestEnv(t)
	_, vault := env.registerUser(t, "alice@example.com")

	root, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "root"})
	mid, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "mid", ParentFolderID: &root.ID})
	leaf, _ := env.folders.Create(context.Background(), vault.ID, &types.CreateFolderRequest{Name: "leaf", ParentFolderID: &mid.ID})

	note, err := env.notes.Create(context.Background(), vault.ID, &types.CreateNoteRequest{Title: "in mid", FolderID: &mid.ID})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	if err := env.folders.Delete(context.Background(), vault.ID, mid.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// 子目录接到被删目录的 parent 上
	got, err := env.folders.Get(context.Background(), vault.ID, leaf.ID)
	if err != nil {
		t.Fatalf("get leaf: %v", err)
	}
	if got.ParentFolderID == nil || *got.ParentFolderID != root.ID {
		t.Fatalf("leaf should hang off root, got %+v", got.ParentFolderID)
	}

	// 笔记回到根
	detail, err := env.notes.Get(context.Background(), vault.ID, note.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if detail.FolderID != nil {
		t.Fatalf("note should be unfiled, got folder %d", *detail.FolderID)
	}

	var count int64
	if err := env.db.Model(&models.Folder{}).Where("id = ?", mid.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("folder row should be gone")
	}
}
