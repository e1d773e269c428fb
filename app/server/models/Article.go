package models

import "time"

type Article struct {
	ID uint `gorm:"primarykey"`

	Title    string        `gorm:"column:title;size:200;not null"`
	Content  string        `gorm:"column:content;type:text;not null"`
	AuthorID uint          `gorm:"column:author_id;index;not null"`           // 作者，创建后不可更改
	Status   ArticleStatus `gorm:"column:status;size:16;index;default:draft"` // 草稿只有作者自己能看到
	Category *string       `gorm:"column:category;size:50"`                   // 分类，可以为空
	Tags     []string      `gorm:"column:tags;type:text;serializer:json"`     // 标签，按顺序存为 JSON 列表

	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// 连接模型时使用
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
