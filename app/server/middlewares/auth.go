package middlewares

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/jwt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Auth 解析 Bearer 令牌并把调用者放入 context
// 没有令牌或令牌无效时按匿名请求继续处理，由具体接口决定是否拒绝
func Auth(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  constants.ContextKeyCaller,
		TokenLookup: "header:Authorization:" + constants.AuthBearerPrefix,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// 缺少令牌是正常的匿名访问，不记录
			if c.Request().Header.Get(echo.HeaderAuthorization) != "" {
				l.Debug("ignored invalid token", zap.String("path", c.Path()), zap.Error(err))
			}
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// Caller 取出 Auth 中间件放入的用户，匿名请求返回 nil
func Caller(c echo.Context) *jwt.User {
	user, ok := c.Get(constants.ContextKeyCaller).(*jwt.User)
	if !ok {
		return nil
	}
	return user
}
