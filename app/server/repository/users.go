package repository

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"context"
	"fmt"
	"gorm.io/gorm"
	"strings"
)

// Users 用户凭据的存储
type Users struct {
	db *gorm.DB
}

// UserPatch 为 nil 的字段不修改
type UserPatch struct {
	Username     *string
	Email        *string
	Role         *models.Role
	PasswordHash *string
}

func (r *Users) Create(ctx context.Context, username, email, passwordHash string, role models.Role) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || passwordHash == "" {
		return nil, errs.Validation("username, email and password are required")
	}
	if err := checkLength("username", username, constants.UserUsernameMaxLength); err != nil {
		return nil, err
	}
	if err := checkLength("email", email, constants.UserEmailMaxLength); err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 检查用户名与邮箱是否已被占用
		if err := checkTaken(tx, "username", username, 0); err != nil {
			return err
		}
		if err := checkTaken(tx, "email", email, 0); err != nil {
			return err
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, translate(err, "user not found")
	}

	return &user, nil
}

func (r *Users) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

func (r *Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

// List 按 id 升序；search 不为空时按用户名或邮箱模糊匹配（不区分大小写）
func (r *Users) List(ctx context.Context, search string, page Page) ([]models.User, int64, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.User{})
		if search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			q = q.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := []models.User{}
	if err := query().Order("id ASC").Limit(page.PerPage).Offset(page.Offset()).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *Users) Update(ctx context.Context, id uint, patch UserPatch) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		if patch.Username != nil {
			if strings.TrimSpace(*patch.Username) == "" {
				return errs.Validation("username must not be empty")
			}
			if err := checkLength("username", *patch.Username, constants.UserUsernameMaxLength); err != nil {
				return err
			}
			if err := checkTaken(tx, "username", *patch.Username, id); err != nil {
				return err
			}
			user.Username = *patch.Username
		}
		if patch.Email != nil {
			if strings.TrimSpace(*patch.Email) == "" {
				return errs.Validation("email must not be empty")
			}
			if err := checkLength("email", *patch.Email, constants.UserEmailMaxLength); err != nil {
				return err
			}
			if err := checkTaken(tx, "email", *patch.Email, id); err != nil {
				return err
			}
			user.Email = *patch.Email
		}
		if patch.Role != nil {
			user.Role = *patch.Role
		}
		if patch.PasswordHash != nil {
			user.PasswordHash = *patch.PasswordHash
		}

		return tx.Model(&user).
			Select("username", "email", "role", "password_hash").
			Updates(&user).Error
	})
	if err != nil {
		return nil, translate(err, "user not found")
	}

	return &user, nil
}

// Delete 删除用户以及：该用户的评论、该用户文章下的评论、该用户的文章
func (r *Users) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		authored := tx.Model(&models.Article{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("article_id IN (?)", authored).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments on articles: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return fmt.Errorf("delete articles: %w", err)
		}

		return tx.Delete(&user).Error
	})

	return translate(err, "user not found")
}

func checkTaken(tx *gorm.DB, column, value string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).
		Where(column+" = ? AND id <> ?", value, exceptID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check %s: %w", column, err)
	}
	if count > 0 {
		return errs.Validation(column + " already exists")
	}
	return nil
}
