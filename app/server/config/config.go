package config

import (
	"fmt"
	"time"
)

type Config struct {
	System struct {
		IsProd             bool   // 是否为生产环境
		Listen             string // 监听地址
		DBDriver           string // 数据库类型： postgres / mysql / sqlite
		DBConnectionString string // 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		TokenTTL           time.Duration // JWT 的有效期
	}
	CORS struct {
		AllowOrigins []string // 允许跨域的来源
	}
	InitAdmin struct {
		Username string // 初始管理员用户名
		Email    string // 初始管理员邮箱
		Password string // 初始管理员密码，留空则不创建
	}
}

// String 隐藏敏感信息，方便打印日志
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Prod: %t, Listen: %s, DB: %s, TokenTTL: %s, CORS: %v, Secrets: *** (masked) ***}",
		c.System.IsProd, c.System.Listen, c.System.DBDriver, c.Security.TokenTTL, c.CORS.AllowOrigins,
	)
}
