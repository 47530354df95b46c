package view

// Page is one visible window of a sorted, filtered collection.
type Page[E any] struct {
	Items []E
	Index int // 1-based, already clamped
	Count int // total pages, never below 1
	Total int // items across all pages
}

// PageCount returns ceil(n/size) with a floor of 1: an empty collection
// still reports exactly one empty page.
func PageCount(n, size int) int {
	if size < 1 {
		size = 1
	}
	count := (n + size - 1) / size
	if count < 1 {
		count = 1
	}
	return count
}

// ClampPage forces a 1-based page index into [1, count]. Out-of-range
// requests are clamped rather than rejected.
func ClampPage(index, count int) int {
	if index < 1 {
		return 1
	}
	if index > count {
		return count
	}
	return index
}

// Window slices out the requested page. Concatenating every page in
// order reproduces the input exactly once each.
func Window[E any](items []E, size, index int) Page[E] {
	if size < 1 {
		size = 1
	}
	count := PageCount(len(items), size)
	index = ClampPage(index, count)
	start := (index - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[E]{
		Items: items[start:end],
		Index: index,
		Count: count,
		Total: len(items),
	}
}
