package handlers

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/middlewares"
	"blog-system/app/server/policy"
	"github.com/labstack/echo/v4"
	"strconv"
)

// caller 身份与角色只来自已验证的令牌；匿名请求返回 nil
func (a *App) caller(c echo.Context) *policy.Caller {
	user := middlewares.Caller(c)
	if user == nil {
		return nil
	}

	return &policy.Caller{
		ID:   user.ID,
		Role: user.Role,
	}
}

// paramID 解析路径中的 id ，不是正整数时视为不存在
func (a *App) paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NotFound("not found")
	}
	return uint(id), nil
}
