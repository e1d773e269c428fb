package errs

import (
	"errors"
	"net/http"
)

// 错误类别，使用 errors.Is 判断
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// Error 携带一条可以直接返回给客户端的消息
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

func Validation(msg string) error {
	return &Error{kind: ErrValidation, msg: msg}
}

func Unauthenticated(msg string) error {
	return &Error{kind: ErrUnauthenticated, msg: msg}
}

func PermissionDenied(msg string) error {
	return &Error{kind: ErrPermissionDenied, msg: msg}
}

func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

// Status 把错误映射为 HTTP 状态码，未知错误一律视为 500
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message 返回可以给客户端看的消息；内部错误只返回通用文本，细节只记日志
func Message(err error) string {
	status := Status(err)
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}

	var e *Error
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}

	return http.StatusText(status)
}
