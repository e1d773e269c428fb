package handlers

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"net/http"
)

type ArticleInput struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Status   *string   `json:"status"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
}

type ArticleCreateResponse struct {
	Message   string `json:"message"`
	ArticleID uint   `json:"article_id"`
}

func parseInputStatus(raw *string) (*models.ArticleStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := models.ParseArticleStatus(*raw)
	if err != nil {
		return nil, errs.Validation("status should be draft or published")
	}
	return &status, nil
}

// ArticleList 默认只列出已发布的文章；草稿只能由作者本人列出
func (a *App) ArticleList(c echo.Context) error {
	caller := a.caller(c)

	status, err := a.parseStatus(c)
	if err != nil {
		return a.fail(c, err)
	}
	if status == nil {
		status = new(models.ArticleStatus)
		*status = models.ArticleStatusPublished
	}

	filter := repository.ArticleFilter{
		Status:   status,
		AuthorID: a.parseQueryID(c, "author_id"),
	}

	if *status == models.ArticleStatusDraft {
		if err := policy.RequireCaller(caller); err != nil {
			return a.fail(c, err)
		}
		if filter.AuthorID == nil {
			filter.AuthorID = &caller.ID
		}
		if !policy.CanListDrafts(caller, *filter.AuthorID) {
			return a.fail(c, errs.PermissionDenied("drafts are only visible to their author"))
		}
	}

	page := a.parsePagination(c, constants.PaginationArticlePerPageDefault)
	articles, total, err := a.repos.Articles.List(c.Request().Context(), filter, page)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &ArticleListResponse[ArticleInfo]{
		Articles:    mapList(articles, toArticleInfo),
		Total:       total,
		Pages:       page.Pages(total),
		CurrentPage: page.Number,
	})
}

// ArticleGet 草稿对作者以外的任何人（包括匿名）返回 403
func (a *App) ArticleGet(c echo.Context) error {
	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	article, err := a.repos.Articles.Get(c.Request().Context(), id)
	if err != nil {
		return a.fail(c, err)
	}

	if !policy.CanViewArticle(a.caller(c), article.AuthorID, article.Status) {
		return a.fail(c, errs.PermissionDenied("no permission to view this article"))
	}

	return c.JSON(http.StatusOK, toArticleInfo(article))
}

func (a *App) ArticleCreate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req ArticleInput
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}
	if req.Title == nil || req.Content == nil {
		return a.fail(c, errs.Validation("title and content are required"))
	}

	status, err := parseInputStatus(req.Status)
	if err != nil {
		return a.fail(c, err)
	}

	in := repository.NewArticle{
		Title:    *req.Title,
		Content:  *req.Content,
		AuthorID: caller.ID, // 作者只来自令牌
		Category: req.Category,
	}
	if status != nil {
		in.Status = *status
	}
	if req.Tags != nil {
		in.Tags = *req.Tags
	}

	article, err := a.repos.Articles.Create(c.Request().Context(), in)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &ArticleCreateResponse{
		Message:   "article created",
		ArticleID: article.ID,
	})
}

// ArticleUpdate 作者或管理员；未给出的字段不修改
func (a *App) ArticleUpdate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req ArticleInput
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}
	status, err := parseInputStatus(req.Status)
	if err != nil {
		return a.fail(c, err)
	}

	err = a.repos.Tx(c.Request().Context(), func(tx *repository.Repos) error {
		article, err := tx.Articles.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}

		// 验证权限，使用数据库中保存的作者
		if !policy.CanModifyArticle(caller, article.AuthorID) {
			return errs.PermissionDenied("no permission to modify this article")
		}

		_, err = tx.Articles.Update(c.Request().Context(), id, repository.ArticlePatch{
			Title:    req.Title,
			Content:  req.Content,
			Status:   status,
			Category: req.Category,
			Tags:     req.Tags,
		})
		return err
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &SuccessMessage{
		Message: "article updated",
	})
}

// ArticleDelete 作者或管理员；文章下的评论一并删除
func (a *App) ArticleDelete(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	err = a.repos.Tx(c.Request().Context(), func(tx *repository.Repos) error {
		article, err := tx.Articles.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}

		if !policy.CanModifyArticle(caller, article.AuthorID) {
			return errs.PermissionDenied("no permission to delete this article")
		}

		return tx.Articles.Delete(c.Request().Context(), id)
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &SuccessMessage{
		Message: "article deleted",
	})
}
