package handlers

import (
	"blog-system/app/server/policy"
	"github.com/labstack/echo/v4"
	"net/http"
)

type StatisticsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalArticles     int64 `json:"total_articles"`
	PublishedArticles int64 `json:"published_articles"`
	DraftArticles     int64 `json:"draft_articles"`
	TotalComments     int64 `json:"total_comments"`
}

func (a *App) AdminStatistics(c echo.Context) error {
	if err := policy.RequireAdmin(a.caller(c)); err != nil {
		return a.fail(c, err)
	}

	stats, err := a.repos.Stats.Get(c.Request().Context())
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &StatisticsResponse{
		TotalUsers:        stats.TotalUsers,
		TotalArticles:     stats.TotalArticles,
		PublishedArticles: stats.PublishedArticles,
		DraftArticles:     stats.DraftArticles,
		TotalComments:     stats.TotalComments,
	})
}
