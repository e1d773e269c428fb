package inits

import (
	"blog-system/app/server/models"
	"blog-system/app/server/password"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"slices"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMySQL    = "mysql"
	DBDriverSQLite   = "sqlite"
)

var supportedDrivers = []string{DBDriverPostgres, DBDriverMySQL, DBDriverSQLite}

func isSupportedDriver(driver string) bool {
	return slices.Contains(supportedDrivers, driver)
}

func dialector(driver, conn string) (gorm.Dialector, error) {
	switch driver {
	case DBDriverPostgres:
		return postgres.Open(conn), nil
	case DBDriverMySQL:
		return mysql.Open(conn), nil
	case DBDriverSQLite:
		return sqlite.Open(conn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func DB(driver, conn string) (db *gorm.DB, err error) {
	d, err := dialector(driver, conn)
	if err != nil {
		return nil, err
	}

	// 打开连接；唯一键冲突等错误转换为 gorm 的通用错误
	if db, err = gorm.Open(d, &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite 只允许一个写连接，同时保证内存数据库在连接之间共享
	if driver == DBDriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
}

// InitAdmin 没有任何管理员且配置了初始密码时，创建初始管理员
func InitAdmin(db *gorm.DB, l *zap.Logger, username, email, plaintext string) (err error) {
	// 查询现有管理员数量
	var counter int64
	if err = db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get admin count: %w", err)
	} else if counter > 0 {
		return nil
	}

	if plaintext == "" {
		l.Warn("no admin user exists and INIT_ADMIN_PASSWORD is not set, skip creating initial admin")
		return nil
	}
	if username == "" || email == "" {
		return errors.New("initial admin username and email must not be empty")
	}

	// 创建密码
	var hash string
	if hash, err = password.Hash(plaintext); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	if err = db.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	l.Info("initial admin user created", zap.String("username", username))

	// 已有数据或全部导入成功
	return nil
}
