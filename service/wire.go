package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(VaultService), "*"),
	wire.Bind(new(IVaultService), new(*VaultService)),

	wire.Struct(new(FolderService), "*"),
	wire.Bind(new(IFolderService), new(*FolderService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(VaultGuard), "*"),
)
