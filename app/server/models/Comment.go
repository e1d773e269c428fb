package models

import "time"

type Comment struct {
	ID uint `gorm:"primarykey"`

	ArticleID uint   `gorm:"column:article_id;index;not null"`
	UserID    uint   `gorm:"column:user_id;index;not null"`
	Content   string `gorm:"column:content;type:text;not null"` // 评论创建后不可修改

	CreatedAt time.Time `gorm:"column:created_at;index"`

	// 连接模型时使用
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`    // 读取时连表获得用户名
	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"` // 所属文章
}
