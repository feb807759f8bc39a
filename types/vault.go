package types

import "Quill/models"

type CreateVaultRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type ListVaultsResponse struct {
	Vaults []*models.Vault `json:"vaults"`
}

type VaultResponse struct {
	Vault *models.Vault `json:"vault"`
}
