package response

import "net/http"

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 错误分类：Code 直接就是对外的 HTTP 状态码

func ErrValidation(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

// ErrInvalidCredentials 账号不存在和密码错误返回同一个错误，防止用户枚举
func ErrInvalidCredentials() *BizError {
	return NewError(http.StatusUnauthorized, "invalid credentials")
}

func ErrUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

// ErrNotFound 资源不存在和无权访问共用 404，不向外确认资源是否存在
func ErrNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func ErrConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func ErrInternal(msg string) *BizError {
	return NewError(http.StatusInternalServerError, msg)
}
