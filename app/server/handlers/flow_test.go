package handlers

import (
	"blog-system/app/server/models"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftPublishFlow(t *testing.T) {
	s := newTestServer(t)

	// 注册并登录
	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "writer",
		"email":    "writer@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "writer", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[LoginToken](t, rec).Token

	// 创建草稿
	id := s.createArticle(token, map[string]any{"title": "Soon", "content": "..."})

	rec = s.do(http.MethodGet, articlePath(id), "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, articlePath(id), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// 发布
	rec = s.do(http.MethodPut, articlePath(id), token, map[string]string{"status": "published"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, articlePath(id), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Soon", decode[ArticleInfo](t, rec).Title)

	rec = s.do(http.MethodGet, "/api/articles", "", nil)
	assert.Equal(t, int64(1), decode[ArticleListResponse[ArticleInfo]](t, rec).Total)
}

func TestAdminDeleteUserCascades(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.user("root", models.RoleAdmin)
	bob, bobToken := s.user("bob", models.RoleUser)
	_, aliceToken := s.user("alice", models.RoleUser)

	// bob 有两篇文章和三条评论
	bobArticles := []uint{
		s.createArticle(bobToken, map[string]any{"title": "b1", "content": "c", "status": "published"}),
		s.createArticle(bobToken, map[string]any{"title": "b2", "content": "c"}),
	}
	aliceArticle := s.createArticle(aliceToken, map[string]any{"title": "a1", "content": "c", "status": "published"})
	s.createComment(bobToken, aliceArticle, "on alice 1")
	s.createComment(bobToken, aliceArticle, "on alice 2")
	s.createComment(bobToken, bobArticles[0], "on own")
	// alice 在 bob 的文章下的评论随文章一起删除
	s.createComment(aliceToken, bobArticles[0], "alice on bob")
	kept := s.createComment(aliceToken, aliceArticle, "alice on alice")

	rec := s.do(http.MethodGet, "/api/admin/statistics", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatisticsResponse{
		TotalUsers:        3,
		TotalArticles:     3,
		PublishedArticles: 2,
		DraftArticles:     1,
		TotalComments:     5,
	}, decode[StatisticsResponse](t, rec))

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", bob.ID), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/admin/statistics", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatisticsResponse{
		TotalUsers:        2,
		TotalArticles:     1,
		PublishedArticles: 1,
		DraftArticles:     0,
		TotalComments:     1,
	}, decode[StatisticsResponse](t, rec))

	// 原来的文章都不存在了
	for _, id := range bobArticles {
		rec = s.do(http.MethodGet, articlePath(id), admin, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	// 没有任何 bob 的评论
	rec = s.do(http.MethodGet, "/api/comments", "", nil)
	comments := decode[CommentListResponse](t, rec)
	require.Len(t, comments.Comments, 1)
	assert.Equal(t, kept.ID, comments.Comments[0].ID)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", bob.ID), admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	s := newTestServer(t)

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), message(t, rec))
}
