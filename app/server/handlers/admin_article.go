package handlers

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"net/http"
)

// AdminArticleList 所有文章，包括草稿；可以按状态和作者过滤
func (a *App) AdminArticleList(c echo.Context) error {
	if err := policy.RequireAdmin(a.caller(c)); err != nil {
		return a.fail(c, err)
	}

	status, err := a.parseStatus(c)
	if err != nil {
		return a.fail(c, err)
	}
	page := a.parsePagination(c, constants.PaginationArticlePerPageDefault)

	articles, total, err := a.repos.Articles.List(c.Request().Context(), repository.ArticleFilter{
		Status:   status,
		AuthorID: a.parseQueryID(c, "author_id"),
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
