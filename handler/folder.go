package handler

import (
	"strconv"

	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"

	"github.com/gin-gonic/gin"
)

type Folder struct {
	Config        *config.Config
	Guard         *service.VaultGuard
	FolderService service.IFolderService
}

func (h *Folder) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/vaults/:vaultId/folders", authorize, middleware.VaultScope(h.Guard))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.GET("/:folderId", context.Wrap(h.Get))
	g.PATCH("/:folderId", context.Wrap(h.Update))
	g.DELETE("/:folderId", context.Wrap(h.Delete))
}

// pathID 路径里的资源 id，解析失败按资源不存在处理
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrNotFound("not found")
	}
	return id, nil
}

func (h *Folder) List(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	folders, err := h.FolderService.List(c.Request.Context(), vaultID)
	if err != nil {
		return err
	}
	response.Success(c, types.ListFoldersResponse{Folders: folders})
	return nil
}

func (h *Folder) Get(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	folderID, err := pathID(c, "folderId")
	if err != nil {
		return err
	}

	folder, err := h.FolderService.Get(c.Request.Context(), vaultID, folderID)
	if err != nil {
		return err
	}
	response.Success(c, types.FolderResponse{Folder: folder})
	return nil
}

func (h *Folder) Create(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	var req types.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("invalid request body")
	}

	folder, err := h.FolderService.Create(c.Request.Context(), vaultID, &req)
	if err != nil {
		return err
	}
	response.Created(c, types.FolderResponse{Folder: folder})
	return nil
}

func (h *Folder) Update(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	folderID, err := pathID(c, "folderId")
	if err != nil {
		return err
	}

	var req types.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("invalid request body")
	}

	folder, err := h.FolderService.Update(c.Request.Context(), vaultID, folderID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.FolderResponse{Folder: folder})
	return nil
}

func (h *Folder) Delete(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	folderID, err := pathID(c, "folderId")
	if err != nil {
		return err
	}

	if err := h.FolderService.Delete(c.Request.Context(), vaultID, folderID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
