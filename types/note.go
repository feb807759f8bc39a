package types

import "time"

type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID *uint64  `json:"folder_id"`
	IsPinned bool     `json:"is_pinned"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest 所有字段都是可选的，没传的字段保持原值。
// Tags 缺席或为 null 表示不动关联，空数组表示清空。
type UpdateNoteRequest struct {
	Title      Optional[string]   `json:"title"`
	Content    Optional[string]   `json:"content"`
	FolderID   Optional[uint64]   `json:"folder_id"`
	IsPinned   Optional[bool]     `json:"is_pinned"`
	IsArchived Optional[bool]     `json:"is_archived"`
	Tags       Optional[[]string] `json:"tags"`
}

// NoteSummary 列表项，不带正文和标签
type NoteSummary struct {
	ID         uint64    `json:"id"`
	FolderID   *uint64   `json:"folder_id"`
	Title      string    `json:"title"`
	IsPinned   bool      `json:"is_pinned"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NoteDetail struct {
	ID         uint64    `json:"id"`
	VaultID    uint64    `json:"vault_id"`
	FolderID   *uint64   `json:"folder_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPinned   bool      `json:"is_pinned"`
	IsArchived bool      `json:"is_archived"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes []*NoteSummary `json:"notes"`
}

type NoteResponse struct {
	Note *NoteDetail `json:"note"`
}
