package catalog

import (
	"testing"

	"github.com/mcastellanos/storefront/internal/apperr"
)

func TestResolveSort(t *testing.T) {
	cases := []struct {
		name       string
		headerHint string
		queryHint  string
		want       SortDirective
	}{
		{"no hints -> latest updated first", "", "", SortDirective{Field: FieldUpdatedAt, Desc: true}},
		{"header asc", "asc", "", SortDirective{Field: FieldPrice, Desc: false}},
		{"header desc", "desc", "", SortDirective{Field: FieldPrice, Desc: true}},
		{"query low", "", "low", SortDirective{Field: FieldPrice, Desc: false}},
		{"query high", "", "high", SortDirective{Field: FieldPrice, Desc: true}},
		{"query overrides header", "asc", "high", SortDirective{Field: FieldPrice, Desc: true}},
		{"query overrides header (other way)", "desc", "low", SortDirective{Field: FieldPrice, Desc: false}},
		{"unknown hints fall back", "up", "cheap", SortDirective{Field: FieldUpdatedAt, Desc: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveSort(tc.headerHint, tc.queryHint)
			if got != tc.want {
				t.Fatalf("ResolveSort(%q, %q) = %+v, want %+v", tc.headerHint, tc.queryHint, got, tc.want)
			}
		})
	}
}

func TestListQueryValidate(t *testing.T) {
	q := ListQuery{Page: 0, Limit: 12}
	if err := q.Validate(); !apperr.Is(err, apperr.InvalidArgument) {
		t.Fatalf("page 0: want InvalidArgument, got %v", err)
	}

	q = ListQuery{Page: -3, Limit: 12}
	if err := q.Validate(); !apperr.Is(err, apperr.InvalidArgument) {
		t.Fatalf("negative page: want InvalidArgument, got %v", err)
	}

	q = ListQuery{Page: 1, Limit: 0}
	if err := q.Validate(); !apperr.Is(err, apperr.InvalidArgument) {
		t.Fatalf("limit 0: want InvalidArgument, got %v", err)
	}

	q = ListQuery{Page: 1, Limit: 5000}
	if err := q.Validate(); err != nil {
		t.Fatalf("oversized limit should clamp, got error %v", err)
	}
	if q.Limit != MaxLimit {
		t.Fatalf("limit = %d, want clamp to %d", q.Limit, MaxLimit)
	}

	q = ListQuery{Page: 3, Limit: 12}
	if err := q.Validate(); err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if q.Sort.Field != FieldUpdatedAt || !q.Sort.Desc {
		t.Fatalf("zero sort should default to updatedAt desc, got %+v", q.Sort)
	}
	if got := q.Skip(); got != 24 {
		t.Fatalf("Skip() = %d, want 24", got)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{100, 10, 10},
	}
	for _, tc := range cases {
		if got := PageCount(tc.total, tc.limit); got != tc.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
