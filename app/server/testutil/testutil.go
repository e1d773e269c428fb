package testutil

import (
	"blog-system/app/server/inits"
	"blog-system/app/server/jwt"
	"blog-system/app/server/models"
	"blog-system/app/server/password"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
)

const SignatureKey = "test-signature-key"

// OpenDB 打开一个以测试名命名的内存 SQLite 数据库并完成迁移
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := inits.DB(inits.DBDriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// NewJWT 测试用的签发器
func NewJWT(t *testing.T) *jwt.JWT {
	t.Helper()

	j, err := jwt.New(SignatureKey, time.Hour)
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}
	return j
}

// CreateUser 直接写入一个用户，密码与用户名相同
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	hash, err := password.Hash(username)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// Token 为用户签发令牌
func Token(t *testing.T, j *jwt.JWT, user *models.User) string {
	t.Helper()

	token, err := j.SignToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
