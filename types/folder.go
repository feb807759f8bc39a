package types

import "Quill/models"

type CreateFolderRequest struct {
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	ParentFolderID *uint64 `json:"parent_folder_id"`
}

type UpdateFolderRequest struct {
	Name           Optional[string] `json:"name"`
	Title          Optional[string] `json:"title"`
	ParentFolderID Optional[uint64] `json:"parent_folder_id"`
}

type ListFoldersResponse struct {
	Folders []*models.Folder `json:"folders"`
}

type FolderResponse struct {
	Folder *models.Folder `json:"folder"`
}
