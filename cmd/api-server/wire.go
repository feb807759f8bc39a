//go:build wireinject
// +build wireinject

package main

import (
	"Quill/config"
	"Quill/dao"
	"Quill/handler"
	"Quill/pkg/database"
	"Quill/pkg/server"
	"Quill/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Vault), "*"),
		wire.Struct(new(handler.Folder), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Tag), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
