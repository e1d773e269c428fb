package repository

import (
	"blog-system/app/server/models"
	"context"
	"fmt"
	"gorm.io/gorm"
)

type Statistics struct {
	TotalUsers        int64
	TotalArticles     int64
	PublishedArticles int64
	DraftArticles     int64
	TotalComments     int64
}

// Stats 管理后台的统计数据
type Stats struct {
	db *gorm.DB
}

func (r *Stats) Get(ctx context.Context) (*Statistics, error) {
	var s Statistics

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counters := []struct {
			name  string
			query *gorm.DB
			dest  *int64
		}{
			{"users", tx.Model(&models.User{}), &s.TotalUsers},
			{"articles", tx.Model(&models.Article{}), &s.TotalArticles},
			{"published articles", tx.Model(&models.Article{}).Where("status = ?", models.ArticleStatusPublished), &s.PublishedArticles},
			{"draft articles", tx.Model(&models.Article{}).Where("status = ?", models.ArticleStatusDraft), &s.DraftArticles},
			{"comments", tx.Model(&models.Comment{}), &s.TotalComments},
		}

		for _, counter := range counters {
			if err := counter.query.Count(counter.dest).Error; err != nil {
				return fmt.Errorf("count %s: %w", counter.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}
