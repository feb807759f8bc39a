package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"

	"github.com/gin-gonic/gin"
)

// VaultScope 统一的 vault 归属检查，挂在所有 /vaults/:vaultId/** 路由前面。
// 别人的 vault id 一律 404，不区分"不存在"和"不是你的"。
func VaultScope(guard *service.VaultGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		vaultID, err := strconv.ParseUint(c.Param("vaultId"), 10, 64)
		if err != nil || vaultID == 0 {
			response.Abort(c, http.StatusNotFound, "vault not found")
			return
		}

		if err := guard.Authorize(c.Request.Context(), userID, vaultID); err != nil {
			var be *response.BizError
			if errors.As(err, &be) {
				response.Abort(c, be.Code, be.Msg)
				return
			}
			response.Abort(c, http.StatusInternalServerError, "server error")
			return
		}

		c.Set(context.CtxVaultID, vaultID)
		c.Next()
	}
}
