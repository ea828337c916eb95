package repository

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; filtering belongs to higher layers.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate cuts one window out of items. An offset past the end yields an empty page.
func Paginate[T any](items []T, p Page) PageResult[T] {
	res := PageResult[T]{Total: len(items), Limit: p.Limit, Offset: p.Offset, Items: []T{}}
	if p.Offset >= len(items) || p.Limit <= 0 {
		return res
	}
	end := min(p.Offset+p.Limit, len(items))
	res.Items = items[p.Offset:end]
	return res
}
