package repository

import (
	"blog-system/app/server/constants"
	"math"
)

// Page 页码从 1 开始
type Page struct {
	Number  int
	PerPage int
}

// NewPage 规范化分页参数：页码至少为 1 且偏移量不会溢出，每页数量限制在 1 到上限之间
func NewPage(number, perPage, defaultPerPage int) Page {
	if number < 1 {
		number = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > constants.PaginationPerPageMax {
		perPage = constants.PaginationPerPageMax
	}
	if maxNumber := math.MaxInt / perPage; number > maxNumber {
		number = maxNumber
	}

	return Page{Number: number, PerPage: perPage}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Pages 总页数，没有记录时为 0
func (p Page) Pages(total int64) int64 {
	pageMax := total / int64(p.PerPage)
	if (total % int64(p.PerPage)) != 0 {
		pageMax++
	}
	return pageMax
}
