package apidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecIsValid(t *testing.T) {
	raw, err := Spec()
	require.NoError(t, err)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	for p, methods := range map[string][]string{
		"/api/auth/register":          {"post"},
		"/api/auth/login":             {"post"},
		"/api/auth/users/{id}":        {"get"},
		"/api/auth/profile":           {"get", "put"},
		"/api/auth/profile/articles":  {"get"},
		"/api/articles":               {"get", "post"},
		"/api/articles/{id}":          {"get", "put", "delete"},
		"/api/articles/{id}/comments": {"post"},
		"/api/comments":               {"get", "post"},
		"/api/comments/{id}":          {"delete"},
		"/api/admin/users":            {"get"},
		"/api/admin/users/{id}":       {"get", "put", "delete"},
		"/api/admin/articles/all":     {"get"},
		"/api/admin/statistics":       {"get"},
		"/api/health":                 {"get"},
	} {
		require.Contains(t, doc.Paths, p)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[p], m, p)
		}
	}
}

func serveDoc(t *testing.T, target string, opts ...Opts) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Pre(Doc("/api/docs", []byte(`{"openapi":"3.0.3"}`), opts...))
	e.GET("/api/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDocServesPages(t *testing.T) {
	rec := serveDoc(t, "/api/docs")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/docs/apidocs", rec.Header().Get(echo.HeaderLocation))

	rec = serveDoc(t, "/api/docs/apidocs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-url="/api/docs/apispec.json"`)

	rec = serveDoc(t, "/api/docs/apispec.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, rec.Body.String())

	// 其他路径交给后续处理
	rec = serveDoc(t, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocAuthorizer(t *testing.T) {
	deny := WithAuthorizer(func(*http.Request) bool { return false })

	rec := serveDoc(t, "/api/docs/apispec.json", deny)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
