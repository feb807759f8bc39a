package service

import (
	"Quill/dao"
	"Quill/pkg/response"
	"context"
)

// VaultGuard 唯一的鉴权入口：确认 vault 属于当前用户。
// 所有 vault 下资源的读写都必须先过这里，路径参数本身不可信。
type VaultGuard struct {
	VaultDAO *dao.Vault
}

// Authorize 失败统一返回 404，不向其他用户确认 vault 是否存在
func (g *VaultGuard) Authorize(ctx context.Context, userID, vaultID uint64) error {
	ok, err := g.VaultDAO.IsOwnedBy(ctx, vaultID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return response.ErrNotFound("vault not found")
	}
	return nil
}
