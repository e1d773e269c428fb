package repository

import (
	"blog-system/app/server/constants"
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
	"context"
	"fmt"
	"gorm.io/gorm"
	"strings"
	"time"
)

type Articles struct {
	db *gorm.DB
}

type NewArticle struct {
	Title    string
	Content  string
	AuthorID uint
	Status   models.ArticleStatus // 为空时为草稿
	Category *string              // 为 nil 或空字符串时不设置分类
	Tags     []string             // 为 nil 时存为空列表
}

// ArticlePatch 为 nil 的字段不修改
type ArticlePatch struct {
	Title    *string
	Content  *string
	Status   *models.ArticleStatus
	Category *string // 空字符串表示清除分类
	Tags     *[]string
}

type ArticleFilter struct {
	Status   *models.ArticleStatus
	AuthorID *uint
}

func (r *Articles) Create(ctx context.Context, in NewArticle) (*models.Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errs.Validation("title is required")
	}
	if err := checkLength("title", in.Title, constants.ArticleTitleMaxLength); err != nil {
		return nil, err
	}
	if in.Category != nil {
		if err := checkLength("category", *in.Category, constants.ArticleCategoryMaxLength); err != nil {
			return nil, err
		}
	}

	article := models.Article{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
		Status:   in.Status,
		Category: in.Category,
		Tags:     in.Tags,
	}
	if article.Category != nil && *article.Category == "" {
		article.Category = nil
	}
	if article.Status == "" {
		article.Status = models.ArticleStatusDraft
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 作者必须存在
		var author models.User
		if err := tx.First(&author, "id = ?", in.AuthorID).Error; err != nil {
			return translate(err, "author not found")
		}

		return tx.Create(&article).Error
	})
	if err != nil {
		return nil, translate(err, "article not found")
	}

	return &article, nil
}

func (r *Articles) Get(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, translate(err, "article not found")
	}
	return &article, nil
}

// List 按创建时间倒序（最新的在前）
func (r *Articles) List(ctx context.Context, filter ArticleFilter, page Page) ([]models.Article, int64, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Article{})
		if filter.Status != nil {
			q = q.Where("status = ?", *filter.Status)
		}
		if filter.AuthorID != nil {
			q = q.Where("author_id = ?", *filter.AuthorID)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	articles := []models.Article{}
	if err := query().
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	return articles, total, nil
}

// Update 只修改 patch 中给出的字段，并刷新 updated_at
func (r *Articles) Update(ctx context.Context, id uint, patch ArticlePatch) (*models.Article, error) {
	var article models.Article

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			return err
		}

		if patch.Title != nil {
			if strings.TrimSpace(*patch.Title) == "" {
				return errs.Validation("title must not be empty")
			}
			if err := checkLength("title", *patch.Title, constants.ArticleTitleMaxLength); err != nil {
				return err
			}
			article.Title = *patch.Title
		}
		if patch.Content != nil {
			article.Content = *patch.Content
		}
		if patch.Status != nil {
			article.Status = *patch.Status
		}
		if patch.Category != nil {
			if err := checkLength("category", *patch.Category, constants.ArticleCategoryMaxLength); err != nil {
				return err
			}
			if *patch.Category == "" {
				article.Category = nil
			} else {
				article.Category = patch.Category
			}
		}
		if patch.Tags != nil {
			article.Tags = *patch.Tags
			if article.Tags == nil {
				article.Tags = []string{}
			}
		}
		article.UpdatedAt = time.Now()

		return tx.Model(&article).
			Select("title", "content", "status", "category", "tags", "updated_at").
			Updates(&article).Error
	})
	if err != nil {
		return nil, translate(err, "article not found")
	}

	return &article, nil
}

// Delete 同一事务中删除文章下的评论
func (r *Articles) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		return tx.Delete(&article).Error
	})

	return translate(err, "article not found")
}
