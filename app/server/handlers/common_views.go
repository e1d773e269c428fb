package handlers

import (
	"blog-system/app/server/models"
	"time"
)

type UserPublic struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type UserProfile struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type ArticleInfo struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	AuthorID  uint                 `json:"author_id"`
	Status    models.ArticleStatus `json:"status"`
	Category  *string              `json:"category"`
	Tags      []string             `json:"tags"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ArticleSummary 列表中不带正文
type ArticleSummary struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	AuthorID  uint                 `json:"author_id"`
	Status    models.ArticleStatus `json:"status"`
	Category  *string              `json:"category"`
	Tags      []string             `json:"tags"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type CommentInfo struct {
	ID        uint      `json:"id"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ArticleListResponse[T ArticleInfo | ArticleSummary] struct {
	Articles    []T   `json:"articles"`
	Total       int64 `json:"total"`
	Pages       int64 `json:"pages"`
	CurrentPage int   `json:"current_page"`
}

type CommentListResponse struct {
	Comments    []CommentInfo `json:"comments"`
	Total       int64         `json:"total"`
	Pages       int64         `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

type UserListResponse struct {
	Users   []UserProfile `json:"users"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Pages   int64         `json:"pages"`
}

func toUserPublic(user *models.User) UserPublic {
	return UserPublic{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func toUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func tagsOf(article *models.Article) []string {
	if article.Tags == nil {
		return []string{}
	}
	return article.Tags
}

func toArticleInfo(article *models.Article) ArticleInfo {
	return ArticleInfo{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		AuthorID:  article.AuthorID,
		Status:    article.Status,
		Category:  article.Category,
		Tags:      tagsOf(article),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

func toArticleSummary(article *models.Article) ArticleSummary {
	return ArticleSummary{
		ID:        article.ID,
		Title:     article.Title,
		AuthorID:  article.AuthorID,
		Status:    article.Status,
		Category:  article.Category,
		Tags:      tagsOf(article),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

func toCommentInfo(comment *models.Comment) CommentInfo {
	res := CommentInfo{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		res.Username = comment.User.Username
	}
	return res
}

// mapList 把模型列表转换为返回值列表
func mapList[M any, V any](items []M, convert func(*M) V) []V {
	res := make([]V, 0, len(items))
	for i := range items {
		res = append(res, convert(&items[i]))
	}
	return res
}
