package models

import "fmt"

// ArticleStatus 文章状态：草稿或已发布
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

func ParseArticleStatus(s string) (ArticleStatus, error) {
	switch st := ArticleStatus(s); st {
	case ArticleStatusDraft, ArticleStatusPublished:
		return st, nil
	default:
		return "", fmt.Errorf("unknown article status: %q", s)
	}
}

func (s ArticleStatus) String() string {
	return string(s)
}
