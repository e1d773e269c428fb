package handlers

import (
	"blog-system/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterHandlers 绑定所有接口；结尾的斜杠会被忽略
func RegisterHandlers(e *echo.Echo, a *App) {
	e.Pre(middleware.RemoveTrailingSlash())

	api := e.Group("/api", middlewares.Auth(a.jwt, a.l))
	api.GET("/health", a.HealthCheck)

	// 用户
	auth := api.Group("/auth")
	auth.POST("/register", a.AuthRegister)
	auth.POST("/login", a.AuthLogin)
	auth.GET("/users/:id", a.AuthUserInfo)
	auth.GET("/profile", a.AuthProfileGet)
	auth.PUT("/profile", a.AuthProfileUpdate)
	auth.GET("/profile/articles", a.AuthProfileArticles)

	// 文章
	articles := api.Group("/articles")
	articles.GET("", a.ArticleList)
	articles.POST("", a.ArticleCreate)
	articles.GET("/:id", a.ArticleGet)
	articles.PUT("/:id", a.ArticleUpdate)
	articles.DELETE("/:id", a.ArticleDelete)
	articles.POST("/:id/comments", a.ArticleCommentCreate)

	// 评论
	comments := api.Group("/comments")
	comments.GET("", a.CommentList)
	comments.POST("", a.CommentCreate)
	comments.DELETE("/:id", a.CommentDelete)

	// 管理
	admin := api.Group("/admin")
	admin.GET("/users", a.AdminUserList)
	admin.GET("/users/:id", a.AdminUserGet)
	admin.PUT("/users/:id", a.AdminUserUpdate)
	admin.DELETE("/users/:id", a.AdminUserDelete)
	admin.GET("/articles/all", a.AdminArticleList)
	admin.GET("/statistics", a.AdminStatistics)
}
