package utils

// P 返回值的指针，方便填充可选字段
func P[T any](v T) *T {
	return &v
}

// V 解引用，空指针时返回零值
func V[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
