package types

import "Quill/models"

type CreateTagRequest struct {
	Name string `json:"name"`
}

type UpdateTagRequest struct {
	Name string `json:"name"`
}

type ListTagsResponse struct {
	Tags []*models.Tag `json:"tags"`
}

type TagResponse struct {
	Tag *models.Tag `json:"tag"`
}
