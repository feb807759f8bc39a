package handler

import (
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("email and password required")
	}

	user, err := h.AuthService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	response.Created(c, types.RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
	})
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.ErrValidation("email and password required")
	}

	token, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	response.Success(c, types.LoginResponse{Token: token})
	return nil
}
