package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewVault,
	NewFolder,
	NewNoteDAO,
	NewTag,
	NewNoteTag,
)
