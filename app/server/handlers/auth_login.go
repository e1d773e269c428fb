package handlers

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/password"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"net/http"
)

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type LoginToken struct {
	Token    string      `json:"token"`
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req LoginRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	// 没有写用户名或密码
	if req.Username == nil || req.Password == nil {
		return a.fail(c, errs.Validation("username and password are required"))
	}

	// 用户不存在与密码错误返回相同的结果
	invalid := errs.Unauthenticated("invalid username or password")

	user, err := a.repos.Users.GetByUsername(rctx, *req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return a.fail(c, invalid)
		}
		return a.fail(c, err)
	}

	// 提取密码 hash 并进行校验
	if match, err := password.Verify(*req.Password, user.PasswordHash); err != nil {
		return a.fail(c, fmt.Errorf("check password: %w", err))
	} else if !match {
		return a.fail(c, invalid)
	}

	// 签出 JWT
	token, err := a.signIn(user)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, token)
}

func (a *App) signIn(user *models.User) (*LoginToken, error) {
	token, err := a.jwt.SignToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginToken{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
