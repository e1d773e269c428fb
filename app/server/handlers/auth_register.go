package handlers

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/password"
	"blog-system/app/server/utils"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
)

type RegisterRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	LoginToken
}

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req RegisterRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	// 检查请求数据是否完整
	if strings.TrimSpace(utils.V(req.Username)) == "" ||
		strings.TrimSpace(utils.V(req.Email)) == "" ||
		utils.V(req.Password) == "" {
		return a.fail(c, errs.Validation("username, email and password are required"))
	}

	// 处理密码
	passwordHash, err := password.Hash(*req.Password)
	if err != nil {
		return a.fail(c, err)
	}

	// 创建用户，用户名或邮箱已被占用时不会写入
	user, err := a.repos.Users.Create(rctx, *req.Username, *req.Email, passwordHash, models.RoleUser)
	if err != nil {
		return a.fail(c, err)
	}

	// 签出 JWT ，注册后直接登录
	token, err := a.signIn(user)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &RegisterResponse{
		Message:    "registered successfully",
		LoginToken: *token,
	})
}
