package handlers

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
)

type ArticleCommentRequest struct {
	Content *string `json:"content"`
}

type ArticleCommentResponse struct {
	Message   string `json:"message"`
	CommentID uint   `json:"comment_id"`
}

func (a *App) ArticleCommentCreate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req ArticleCommentRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	comment, err := a.createComment(c, caller, id, req.Content)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &ArticleCommentResponse{
		Message:   "comment added",
		CommentID: comment.ID,
	})
}

// createComment 只能评论自己看得到的文章
func (a *App) createComment(c echo.Context, caller *policy.Caller, articleID uint, content *string) (*models.Comment, error) {
	if content == nil || strings.TrimSpace(*content) == "" {
		return nil, errs.Validation("content is required")
	}

	var comment *models.Comment
	err := a.repos.Tx(c.Request().Context(), func(tx *repository.Repos) error {
		article, err := tx.Articles.Get(c.Request().Context(), articleID)
		if err != nil {
			return err
		}

		if !policy.CanViewArticle(caller, article.AuthorID, article.Status) {
			return errs.PermissionDenied("no permission to comment on this article")
		}

		comment, err = tx.Comments.Create(c.Request().Context(), articleID, caller.ID, *content)
		return err
	})

	return comment, err
}
