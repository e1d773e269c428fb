package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour // 令牌默认有效期（一天）
	AuthBearerPrefix  = "Bearer "      // Authorization 头的前缀
)

const (
	ContextKeyCaller = "caller" // 认证中间件写入 echo.Context 的键
)
