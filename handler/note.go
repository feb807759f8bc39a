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

type Note struct {
	Config      *config.Config
	Guard       *service.VaultGuard
	NoteService service.INoteService
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/vaults/:vaultId/notes", authorize, middleware.VaultScope(h.Guard))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.GET("/:noteId", context.Wrap(h.Get))
	g.PATCH("/:noteId", context.Wrap(h.Update))
	g.DELETE("/:noteId", context.Wrap(h.Delete))
}

func (h *Note) List(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	notes, err := h.NoteService.List(c.Request.Context(), vaultID)
	if err != nil {
		return err
	}
	response.Success(c, types.ListNotesResponse{Notes: notes})
	return nil
}

func (h *Note) Get(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return err
	}

	note, err := h.NoteService.Get(c.Request.Context(), vaultID, noteID)
	if err != nil {
		return err
	}
	response.Success(c, types.NoteResponse{Note: note})
	return nil
}

func (h *Note) Create(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("invalid request body")
	}

	note, err := h.NoteService.Create(c.Request.Context(), vaultID, &req)
	if err != nil {
		return err
	}
	response.Created(c, types.NoteResponse{Note: note})
	return nil
}

func (h *Note) Update(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return err
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("invalid request body")
	}

	note, err := h.NoteService.Update(c.Request.Context(), vaultID, noteID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.NoteResponse{Note: note})
	return nil
}

func (h *Note) Delete(c *gin.Context) error {
	vaultID, err := context.GetVaultID(c)
	if err != nil {
		return response.ErrNotFound("vault not found")
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return err
	}

	if err := h.NoteService.Delete(c.Request.Context(), vaultID, noteID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
