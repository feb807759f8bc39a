package handler

import (
	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"

	"github.com/gin-gonic/gin"
)

type Vault struct {
	Config       *config.Config
	Guard        *service.VaultGuard
	VaultService service.IVaultService
}

func (h *Vault) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/vaults", authorize)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/:vaultId", middleware.VaultScope(h.Guard), context.Wrap(h.Delete))
}

func (h *Vault) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("unauthorized")
	}

	vaults, err := h.VaultService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.ListVaultsResponse{Vaults: vaults})
	return nil
}

func (h *Vault) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("unauthorized")
	}

	var req types.CreateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("name required")
	}

	vault, err := h.VaultService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, types.VaultResponse{Vault: vault})
	return nil
}

func (h *Vault) Delete(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	if err := h.VaultService.Delete(c.Request.Context(), vaultID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
