package inits

import (
	"blog-system/app/server/config"
	"blog-system/app/server/constants"
	"fmt"
	"os"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if driver, exist := os.LookupEnv("DB_DRIVER"); !exist {
		cfg.System.DBDriver = DBDriverPostgres // 默认使用 Postgres
	} else if !isSupportedDriver(driver) {
		return nil, fmt.Errorf("DB_DRIVER should be one of %s", strings.Join(supportedDrivers, ", "))
	} else {
		cfg.System.DBDriver = driver
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if ttlStr, exist := os.LookupEnv("TOKEN_TTL"); !exist {
		cfg.Security.TokenTTL = constants.AuthTokenDuration
	} else if ttl, err := time.ParseDuration(ttlStr); err != nil || ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL should be a valid positive duration")
	} else {
		cfg.Security.TokenTTL = ttl
	}

	if origins, exist := os.LookupEnv("CORS_ALLOW_ORIGINS"); !exist {
		cfg.CORS.AllowOrigins = []string{"*"} // 默认允许所有来源
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORS.AllowOrigins = append(cfg.CORS.AllowOrigins, origin)
			}
		}
	}

	cfg.InitAdmin.Username = getEnv("INIT_ADMIN_USERNAME", "admin")
	cfg.InitAdmin.Email = getEnv("INIT_ADMIN_EMAIL", "admin@localhost")
	cfg.InitAdmin.Password = getEnv("INIT_ADMIN_PASSWORD", "")

	return &cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exist := os.LookupEnv(key); exist {
		return value
	}
	return defaultVal
}
