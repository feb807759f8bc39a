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

type Tag struct {
	Config     *config.Config
	Guard      *service.VaultGuard
	TagService service.ITagService
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/vaults/:vaultId/tags", authorize, middleware.VaultScope(h.Guard))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.GET("/:tagId", context.Wrap(h.Get))
	g.PATCH("/:tagId", context.Wrap(h.Update))
	g.DELETE("/:tagId", context.Wrap(h.Delete))
}

func (h *Tag) List(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	tags, err := h.TagService.List(c.Request.Context(), vaultID)
	if err != nil {
		return err
	}
	response.Success(c, types.ListTagsResponse{Tags: tags})
	return nil
}

func (h *Tag) Get(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	tagID, err := pathID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := h.TagService.Get(c.Request.Context(), vaultID, tagID)
	if err != nil {
		return err
	}
	response.Success(c, types.TagResponse{Tag: tag})
	return nil
}

func (h *Tag) Create(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("name required")
	}

	tag, err := h.TagService.Create(c.Request.Context(), vaultID, &req)
	if err != nil {
		return err
	}
	response.Created(c, types.TagResponse{Tag: tag})
	return nil
}

func (h *Tag) Update(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	tagID, err := pathID(c, "tagId")
	if err != nil {
		return err
	}

	var req types.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("name required")
	}

	tag, err := h.TagService.Update(c.Request.Context(), vaultID, tagID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.TagResponse{Tag: tag})
	return nil
}

func (h *Tag) Delete(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	tagID, err := pathID(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.TagService.Delete(c.Request.Context(), vaultID, tagID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
