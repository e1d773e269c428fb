package handlers

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"strconv"
)

// parsePagination 读取 page 与 per_page ，无法解析时使用默认值
func (a *App) parsePagination(c echo.Context, defaultPerPage int) repository.Page {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil {
		perPage = defaultPerPage
	}

	return repository.NewPage(page, perPage, defaultPerPage)
}

// parseStatus 读取可选的 status 过滤条件，为空时返回 nil
func (a *App) parseStatus(c echo.Context) (*models.ArticleStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status, err := models.ParseArticleStatus(raw)
	if err != nil {
		return nil, errs.Validation("status should be draft or published")
	}
	return &status, nil
}

// parseQueryID 读取可选的 id 类查询参数；无法解析时当作没有提供
func (a *App) parseQueryID(c echo.Context, name string) *uint {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}
