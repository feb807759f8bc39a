package server

import (
	"Quill/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Vault  *handler.Vault
	Folder *handler.Folder
	Note   *handler.Note
	Tag    *handler.Tag
}
