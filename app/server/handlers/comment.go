package handlers

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/errs"
	"blog-system/app/server/policy"
	"blog-system/app/server/repository"
	"errors"
	"github.com/labstack/echo/v4"
	"net/http"
)

type CommentCreateRequest struct {
	ArticleID *uint   `json:"article_id"`
	Content   *string `json:"content"`
}

// CommentList 可以按文章过滤，用户名在读取时获得
func (a *App) CommentList(c echo.Context) error {
	page := a.parsePagination(c, constants.PaginationCommentPerPageDefault)

	comments, total, err := a.repos.Comments.List(c.Request().Context(), a.parseQueryID(c, "article_id"), page)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &CommentListResponse{
		Comments:    mapList(comments, toCommentInfo),
		Total:       total,
		Pages:       page.Pages(total),
		CurrentPage: page.Number,
	})
}

func (a *App) CommentCreate(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	// 绑定请求体
	var req CommentCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}
	if req.ArticleID == nil || *req.ArticleID == 0 {
		return a.fail(c, errs.Validation("article_id is required"))
	}

	comment, err := a.createComment(c, caller, *req.ArticleID, req.Content)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toCommentInfo(comment))
}

// CommentDelete 评论者、文章作者或管理员
func (a *App) CommentDelete(c echo.Context) error {
	caller := a.caller(c)
	if err := policy.RequireCaller(caller); err != nil {
		return a.fail(c, err)
	}

	id, err := a.paramID(c, "id")
	if err != nil {
		return a.fail(c, err)
	}

	err = a.repos.Tx(c.Request().Context(), func(tx *repository.Repos) error {
		comment, err := tx.Comments.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}

		// 文章已不存在时只是不满足作者条件
		var articleAuthorID *uint
		if article, err := tx.Articles.Get(c.Request().Context(), comment.ArticleID); err == nil {
			articleAuthorID = &article.AuthorID
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}

		if !policy.CanDeleteComment(caller, comment.UserID, articleAuthorID) {
			return errs.PermissionDenied("no permission to delete this comment")
		}

		return tx.Comments.Delete(c.Request().Context(), id)
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &SuccessMessage{
		Message: "comment deleted",
	})
}
