package handlers

import (
	"blog-system/app/server/jwt"
	"blog-system/app/server/models"
	"blog-system/app/server/testutil"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testServer struct {
	t  *testing.T
	e  *echo.Echo
	db *gorm.DB
	j  *jwt.JWT
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.OpenDB(t)
	j := testutil.NewJWT(t)

	e := echo.New()
	RegisterHandlers(e, NewApp(zap.NewNop(), db, j))

	return &testServer{t: t, e: e, db: db, j: j}
}

// user 创建用户并返回其令牌
func (s *testServer) user(username string, role models.Role) (*models.User, string) {
	s.t.Helper()
	user := testutil.CreateUser(s.t, s.db, username, role)
	return user, testutil.Token(s.t, s.j, user)
}

func (s *testServer) do(method, target, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// createArticle 通过接口创建文章并返回 id
func (s *testServer) createArticle(token string, body map[string]any) uint {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/articles", token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[ArticleCreateResponse](s.t, rec).ArticleID
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorMessage](t, rec).Message
}
