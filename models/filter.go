// File: /models/filter.go
package models

const defaultPageSize = 10

// ListFilter selects published posts for the feed. Search matches title or
// body as a case-insensitive substring; Tag must match a tag exactly.
type ListFilter struct {
	Search string
	Tag    string
	Page   int
	Limit  int
}

// Normalized applies the pagination defaults: page 1, limit 10.
func (f ListFilter) Normalized() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	return f
}

// Offset is the number of posts to skip for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
