package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type HealthStatus struct {
	Status string `json:"status"`
}

// HealthCheck 同时检查数据库连接
func (a *App) HealthCheck(c echo.Context) error {
	if err := a.repos.Ping(c.Request().Context()); err != nil {
		a.l.Error("database unreachable", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	}
	return c.JSON(http.StatusOK, &HealthStatus{Status: "ok"})
}
