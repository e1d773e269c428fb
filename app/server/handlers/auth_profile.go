package handlers

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"net/http"
)

type ProfileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type ProfileUpdateResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// AuthUserInfo 公开的用户信息，不需要登录
func (a *App) AuthUserInfo(c echo.Context) error {
	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	user, err := a.repos.Users.Get(c.Request().Context(), id)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, toUserPublic(user))
}

func (a *App) AuthProfileGet(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	user, err := a.repos.Users.Get(c.Request().Context(), caller.ID)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, toUserProfile(user))
}

// AuthProfileUpdate 只能修改自己的用户名和邮箱
func (a *App) AuthProfileUpdate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req ProfileUpdateRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	user, err := a.repos.Users.Update(c.Request().Context(), caller.ID, repository.UserPatch{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &ProfileUpdateResponse{
		Message: "profile updated",
		User:    toUserProfile(user),
	})
}

// AuthProfileArticles 自己的文章，包括草稿
func (a *App) AuthProfileArticles(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	status, err := a.parseStatus(c)
	if err != nil {
		return a.fail(c, err)
	}
	page := a.parsePagination(c, constants.PaginationArticlePerPageDefault)

	articles, total, err := a.repos.Articles.List(c.Request().Context(), repository.ArticleFilter{
		Status:   status,
		AuthorID: &caller.ID,
	}, page)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &ArticleListResponse[ArticleSummary]{
		Articles:    mapList(articles, toArticleSummary),
		Total:       total,
		Pages:       page.Pages(total),
		CurrentPage: page.Number,
	})
}
