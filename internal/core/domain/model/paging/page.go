package paging

// Page is a read-only slice of a sorted result set plus the paging metadata
// reported by storage.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// NewPage builds the page metadata for content fetched with query out of total rows.
func NewPage[T any](content []T, query Query, total int64) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}

	totalPages := 0
	if size := int64(query.PageSize()); size > 0 && total > 0 {
		pages := total / size
		if total%size != 0 {
			pages++
		}
		totalPages = int(pages)
	}

	return Page[T]{
		Content:       content,
		PageNumber:    query.PageNumber(),
		PageSize:      query.PageSize(),
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          query.PageNumber() >= totalPages-1,
	}
}

// MapPage projects every element of p with fn and keeps the metadata unchanged.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}

	return Page[R]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
