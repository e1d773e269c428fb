package handlers

import (
	"blog-system/app/server/errs"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

type SuccessMessage struct {
	Message string `json:"message"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &ErrorMessage{
		Message: http.StatusText(statusCode),
	})
}

// fail 按错误类别返回；内部错误只记日志，不把细节返回给客户端
func (a *App) fail(c echo.Context, err error) error {
	statusCode := errs.Status(err)
	if statusCode == http.StatusInternalServerError {
		a.l.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(statusCode, &ErrorMessage{
		Message: errs.Message(err),
	})
}

// bind 绑定请求体，格式错误时为 400
func (a *App) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return errs.Validation("invalid request body")
	}
	return nil
}
