package handlers

import (
	"blog-system/app/server/jwt"
	"blog-system/app/server/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l     *zap.Logger       // 日志
	repos *repository.Repos // 数据库
	jwt   *jwt.JWT          // JWT ，用于无状态验证
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT) *App {
	return &App{
		l:     l,
		repos: repository.New(db),
		jwt:   j,
	}
}
