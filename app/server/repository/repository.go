package repository

import (
	"blog-system/app/server/errs"
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"unicode/utf8"
)

// Repos 把各个仓库绑定到同一个数据库句柄（或同一个事务）上
type Repos struct {
	db *gorm.DB

	Users    *Users
	Articles *Articles
	Comments *Comments
	Stats    *Stats
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		db:       db,
		Users:    &Users{db: db},
		Articles: &Articles{db: db},
		Comments: &Comments{db: db},
		Stats:    &Stats{db: db},
	}
}

// Tx 在同一个事务中执行 fn ，返回错误时全部回滚
func (r *Repos) Tx(ctx context.Context, fn func(tx *Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping 检查数据库连接是否可用
func (r *Repos) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// translate 把 gorm 的错误转换为统一的错误类别
func translate(err error, notFoundMessage string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NotFound(notFoundMessage)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Validation("duplicate value")
	default:
		return err
	}
}

// checkLength 按字符数（而非字节数）检查长度上限
func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return errs.Validation(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}
