package handlers

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/password"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

type AdminUserUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

type AdminUserUpdateResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

func (a *App) AdminUserList(c echo.Context) error {
	// 先验证管理员权限
	if err := policy.RequireAdmin(a.caller(c)); err != nil {
		return a.fail(c, err)
	}

	page := a.parsePagination(c, constants.PaginationUserPerPageDefault)
	search := strings.TrimSpace(c.QueryParam("search"))

	users, total, err := a.repos.Users.List(c.Request().Context(), search, page)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &UserListResponse{
		Users:   mapList(users, toUserProfile),
		Total:   total,
		Page:    page.Number,
		PerPage: page.PerPage,
		Pages:   page.Pages(total),
	})
}

func (a *App) AdminUserGet(c echo.Context) error {
	if err := policy.RequireAdmin(a.caller(c)); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	user, err := a.repos.Users.Get(c.Request().Context(), id)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, toUserProfile(user))
}

// AdminUserUpdate 可以修改用户名、邮箱、角色和密码
func (a *App) AdminUserUpdate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireAdmin(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req AdminUserUpdateRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	patch := repository.UserPatch{
		Username: req.Username,
		Email:    req.Email,
	}

	// 角色只接受 user 与 admin
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			return a.fail(c, errs.Validation("role should be user or admin"))
		}
		patch.Role = &role
	}

	// 空密码视为不修改
	if req.Password != nil && *req.Password != "" {
		passwordHash, err := password.Hash(*req.Password)
		if err != nil {
			return a.fail(c, err)
		}
		patch.PasswordHash = &passwordHash
	}

	user, err := a.repos.Users.Update(c.Request().Context(), id, patch)
	if err != nil {
		return a.fail(c, err)
	}

	if patch.Role != nil {
		a.l.Info("user role changed",
			zap.Uint("operator", caller.ID),
			zap.Uint("id", user.ID),
			zap.String("role", user.Role.String()),
		)
	}

	return c.JSON(http.StatusOK, &AdminUserUpdateResponse{
		Message: "user updated",
		User:    toUserProfile(user),
	})
}

// AdminUserDelete 同一事务中删除用户的文章与评论
func (a *App) AdminUserDelete(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireAdmin(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	if err := a.repos.Users.Delete(c.Request().Context(), id); err != nil {
		return a.fail(c, err)
	}

	a.l.Info("user deleted", zap.Uint("operator", caller.ID), zap.Uint("id", id))

	return c.JSON(http.StatusOK, &SuccessMessage{
		Message: "user deleted",
	})
}
