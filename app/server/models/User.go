package models

import "time"

type User struct {
	ID uint `gorm:"primarykey"`

	// 基础信息
	Username string `gorm:"column:username;size:50;uniqueIndex;not null"` // 用户名，全局唯一
	Email    string `gorm:"column:email;size:100;uniqueIndex;not null"`   // 邮箱，全局唯一
	Role     Role   `gorm:"column:role;size:16;not null;default:user"`    // 角色，只能由管理员修改

	// 登录相关
	PasswordHash string `gorm:"column:password_hash;not null"` // 密码，使用 argon2id 储存

	CreatedAt time.Time `gorm:"column:created_at"`
}
