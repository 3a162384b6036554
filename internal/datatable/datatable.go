// Package datatable implements the admin list screens' query model: the full
// dataset is held in memory and every query recomputes search, sort and
// pagination from scratch. Search is a case-insensitive substring match
// across all declared columns; sort is single-column; page size is fixed.
package datatable

import (
	"sort"
	"strconv"
	"strings"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Kind describes how a column's values are matched and compared.
type Kind int

const (
	String Kind = iota
	Number
)

// Column declares one searchable/sortable column over rows of type T.
type Column[T any] struct {
	Name   string
	Kind   Kind
	String func(row T) string  // used for Kind String
	Number func(row T) float64 // used for Kind Number
}

// Query is one admin-screen request over a table. LastSearch is the search
// string the client used on its previous request; when Search differs from
// it, the page resets to 1. Keeping it in the query keeps the table itself
// stateless, so one instance can serve concurrent requests.
type Query struct {
	Search     string
	LastSearch string
	SortBy     string // column name, empty for input order
	SortDesc   bool
	Page       int // 1-based; a changed Search always resets it to 1
}

// Page is one page of results plus paging metadata.
type Page[T any] struct {
	Rows       []T `json:"rows"`
	Total      int `json:"total"` // row count after filtering
	PageNumber int `json:"page"`
	PageCount  int `json:"page_count"`
}

// Table evaluates queries over an in-memory dataset. It holds no per-request
// state and is safe for concurrent use.
type Table[T any] struct {
	columns []Column[T]
}

// New creates a table with the declared columns.
func New[T any](columns []Column[T]) *Table[T] {
	return &Table[T]{columns: columns}
}

func (t *Table[T]) cellText(row T, col Column[T]) string {
	switch col.Kind {
	case Number:
		return strconv.FormatFloat(col.Number(row), 'f', -1, 64)
	default:
		return col.String(row)
	}
}

func (t *Table[T]) matches(row T, needle string) bool {
	for _, col := range t.columns {
		if strings.Contains(strings.ToLower(t.cellText(row, col)), needle) {
			return true
		}
	}
	return false
}

func (t *Table[T]) column(name string) (Column[T], bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column[T]{}, false
}

// Apply evaluates a query against rows. The input slice is not mutated.
// A search string different from the query's LastSearch resets the page
// to 1 regardless of what the query asked for.
func (t *Table[T]) Apply(rows []T, q Query) Page[T] {
	filtered := rows
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered = make([]T, 0, len(rows))
		for _, row := range rows {
			if t.matches(row, needle) {
				filtered = append(filtered, row)
			}
		}
	}

	if col, ok := t.column(q.SortBy); ok {
		sorted := make([]T, len(filtered))
		copy(sorted, filtered)
		less := func(i, j int) bool {
			if col.Kind == Number {
				return col.Number(sorted[i]) < col.Number(sorted[j])
			}
			return strings.ToLower(col.String(sorted[i])) < strings.ToLower(col.String(sorted[j]))
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			if q.SortDesc {
				return less(j, i)
			}
			return less(i, j)
		})
		filtered = sorted
	}

	page := q.Page
	if q.Search != q.LastSearch {
		page = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	pageCount := (total + PageSize - 1) / PageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Rows:       filtered[start:end],
		Total:      total,
		PageNumber: page,
		PageCount:  pageCount,
	}
}
