package logic

// Page is one slice of a filtered view. Number is 1-based.
type Page[T any] struct {
	Number int
	Total  int
	Items  []T
	// Start and End are the 0-based half-open bounds of Items in the view
	Start int
	End   int
}

// IsFirst reports whether there is no previous page
func (p Page[T]) IsFirst() bool { return p.Number <= 1 }

// IsLast reports whether there is no next page
func (p Page[T]) IsLast() bool { return p.Number >= p.Total }

// TotalPages is max(1, ceil(count/size))
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// ClampPage bounds a 1-based page number to [1, TotalPages(count, size)]
func ClampPage(page, count, size int) int {
	total := TotalPages(count, size)
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the requested page of view, clamping out-of-range numbers
func Paginate[T any](view []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	page = ClampPage(page, len(view), size)

	start := (page - 1) * size
	end := start + size
	if end > len(view) {
		end = len(view)
	}
	if start > end {
		start = end
	}

	return Page[T]{
		Number: page,
		Total:  TotalPages(len(view), size),
		Items:  view[start:end],
		Start:  start,
		End:    end,
	}
}

// PageOf returns the 1-based page containing view index i
func PageOf(i, size int) int {
	if size < 1 || i < 0 {
		return 1
	}
	return i/size + 1
}
