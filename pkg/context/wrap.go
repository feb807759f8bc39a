package context

import (
	"errors"
	"net/http"

	"Quill/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxVaultID = "vault_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  "server error",
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetVaultID 取 VaultScope 中间件放进来的 vault id
func GetVaultID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxVaultID)
	if !ok {
		return 0, errors.New("vault_id 不存在")
	}

	vid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("vault_id 类型错误")
	}

	return vid, nil
}
