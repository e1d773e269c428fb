// Package policy 集中做访问控制判断。
// 所有函数都是纯函数；所有者比较只使用数据库中保存的字段，不使用客户端提交的值。
package policy

import (
	"blog-system/app/server/errs"
	"blog-system/app/server/models"
)

// Caller 已通过令牌验证的调用者
type Caller struct {
	ID   uint
	Role models.Role
}

func (c *Caller) isAdmin() bool {
	return c != nil && c.Role == models.RoleAdmin
}

// RequireCaller 需要登录的操作
func RequireCaller(caller *Caller) error {
	if caller == nil {
		return errs.Unauthenticated("authentication required")
	}
	return nil
}

// RequireAdmin 管理员接口在做任何其他事情之前调用
func RequireAdmin(caller *Caller) error {
	if err := RequireCaller(caller); err != nil {
		return err
	}
	if !caller.isAdmin() {
		return errs.PermissionDenied("admin role required")
	}
	return nil
}

// CanViewArticle 已发布的文章所有人可见；草稿只有作者可见
func CanViewArticle(caller *Caller, authorID uint, status models.ArticleStatus) bool {
	if status == models.ArticleStatusPublished {
		return true
	}
	return caller != nil && caller.ID == authorID
}

// CanListDrafts 只能列出自己的草稿
func CanListDrafts(caller *Caller, authorID uint) bool {
	return caller != nil && caller.ID == authorID
}

// CanModifyArticle 作者或管理员
func CanModifyArticle(caller *Caller, authorID uint) bool {
	if caller == nil {
		return false
	}
	return caller.ID == authorID || caller.isAdmin()
}

// CanDeleteComment 评论者、所属文章的作者或管理员；文章已不存在时 articleAuthorID 为 nil
func CanDeleteComment(caller *Caller, commentUserID uint, articleAuthorID *uint) bool {
	if caller == nil {
		return false
	}
	if caller.ID == commentUserID || caller.isAdmin() {
		return true
	}
	return articleAuthorID != nil && *articleAuthorID == caller.ID
}
