package repository

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"context"
	"fmt"
	"gorm.io/gorm"
	"strings"
)

type Comments struct {
	db *gorm.DB
}

// Create 文章不存在时返回 NotFound ；返回的评论带有评论者信息
func (r *Comments) Create(ctx context.Context, articleID, userID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.Validation("content is required")
	}

	comment := models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.Select("id").First(&article, "id = ?", articleID).Error; err != nil {
			return translate(err, "article not found")
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return translate(err, "user not found")
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		comment.User = &user
		return nil
	})
	if err != nil {
		return nil, translate(err, "comment not found")
	}

	return &comment, nil
}

func (r *Comments) Get(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, translate(err, "comment not found")
	}
	return &comment, nil
}

// List 按创建时间倒序；用户名在读取时连表获得
func (r *Comments) List(ctx context.Context, articleID *uint, page Page) ([]models.Comment, int64, error) {
	var total int64
	countQuery := r.db.WithContext(ctx).Model(&models.Comment{})
	if articleID != nil {
		countQuery = countQuery.Where("article_id = ?", *articleID)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	listQuery := r.db.WithContext(ctx).Model(&models.Comment{}).Joins("User")
	if articleID != nil {
		listQuery = listQuery.Where("comments.article_id = ?", *articleID)
	}

	comments := []models.Comment{}
	if err := listQuery.
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&comments).Error; err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	return comments, total, nil
}

func (r *Comments) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("comment not found")
	}
	return nil
}
