package catalog

import (
	"github.com/mcastellanos/storefront/internal/apperr"
)

// Sortable fields. These are the store-side field names.
const (
	FieldPrice     = "price"
	FieldUpdatedAt = "updatedAt"
)

// MaxLimit caps caller-supplied page sizes; the contract has no upper
// bound, so larger values are clamped rather than rejected.
const MaxLimit = 100

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// SortDirective is the resolved (field, direction) pair for a listing.
type SortDirective struct {
	Field string
	Desc  bool
}

// ResolveSort turns the two sort hints into one directive. The header hint
// (asc/desc) is applied first; the query hint (low/high) is applied after
// and overwrites it when both are present. Anything else falls back to
// most-recently-updated first.
func ResolveSort(headerHint, queryHint string) SortDirective {
	var d SortDirective
	switch headerHint {
	case "asc":
		d = SortDirective{Field: FieldPrice, Desc: false}
	case "desc":
		d = SortDirective{Field: FieldPrice, Desc: true}
	}
	switch queryHint {
	case "low":
		d = SortDirective{Field: FieldPrice, Desc: false}
	case "high":
		d = SortDirective{Field: FieldPrice, Desc: true}
	}
	if d.Field == "" {
		d = SortDirective{Field: FieldUpdatedAt, Desc: true}
	}
	return d
}

// ListQuery is a validated set of listing parameters.
type ListQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
	Sort     SortDirective
}

// Validate rejects non-positive page/limit (a page of 0 would produce a
// negative skip) and clamps oversized limits to MaxLimit.
func (q *ListQuery) Validate() error {
	if q.Page <= 0 {
		return apperr.New(apperr.InvalidArgument, "page must be a positive integer")
	}
	if q.Limit <= 0 {
		return apperr.New(apperr.InvalidArgument, "limit must be a positive integer")
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Sort.Field == "" {
		q.Sort = SortDirective{Field: FieldUpdatedAt, Desc: true}
	}
	return nil
}

// Skip is the number of documents skipped before the requested page.
func (q ListQuery) Skip() int { return (q.Page - 1) * q.Limit }

// PageCount computes the pages field of a listing response.
func PageCount(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
