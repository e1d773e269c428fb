package commands

import (
	"blog-system/app/server/config"
	"blog-system/app/server/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig(prod bool) *config.Config {
	var cfg config.Config
	cfg.System.IsProd = prod
	cfg.CORS.AllowOrigins = []string{"https://blog.example.com"}
	return &cfg
}

func TestNewServerMiddlewares(t *testing.T) {
	e := newServer(testConfig(false), zap.NewNop(), testutil.OpenDB(t), testutil.NewJWT(t))

	req := httptest.NewRequest(http.MethodGet, "/api/health/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://blog.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "https://blog.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestNewServerDocsOnlyOutsideProduction(t *testing.T) {
	db := testutil.OpenDB(t)
	j := testutil.NewJWT(t)

	dev := newServer(testConfig(false), zap.NewNop(), db, j)
	rec := httptest.NewRecorder()
	dev.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/apispec.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/articles")

	prod := newServer(testConfig(true), zap.NewNop(), db, j)
	rec = httptest.NewRecorder()
	prod.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/apispec.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := []string{}
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
}
