package constants

// 分页
const (
	PaginationPerPageMax            = 100 // 每页数量上限，所有列表接口统一限制
	PaginationArticlePerPageDefault = 10
	PaginationCommentPerPageDefault = 20
	PaginationUserPerPageDefault    = 10
)
