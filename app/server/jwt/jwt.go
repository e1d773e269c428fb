package jwt

import (
	"blog-system/app/server/models"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"strconv"
	"time"
)

// ErrInvalidToken 所有校验失败都包装成这一个错误，调用方不应区分失败原因
var ErrInvalidToken = errors.New("invalid token")

type JWT struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type User struct {
	ID      uint
	Role    models.Role
	Expires int64 // Unix second
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func New(key string, ttl time.Duration) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	return &JWT{key: []byte(key), ttl: ttl, now: time.Now}, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrInvalidToken)
	}

	// 映射字段
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// 匹配内容
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	role, err := models.ParseRole(c.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return &User{
		ID:      uint(id),
		Role:    role,
		Expires: c.ExpiresAt.Unix(),
	}, nil
}

func (j *JWT) SignToken(id uint, role models.Role) (string, error) {
	now := j.now()

	// 创建声明
	c := &claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	return token.SignedString(j.key)
}
