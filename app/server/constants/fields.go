package constants

// 字段长度上限（按字符计），与模型中的 size 标签保持一致
const (
	UserUsernameMaxLength    = 50
	UserEmailMaxLength       = 100
	ArticleTitleMaxLength    = 200
	ArticleCategoryMaxLength = 50
)
