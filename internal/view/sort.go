package view

import (
	"sort"
	"strings"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortSpec designates the column and direction rows are ordered by. The zero
// value means no sort is active.
type SortSpec struct {
	Column    Column    `json:"column"`
	Direction Direction `json:"direction"`
}

// SortRows orders the rows within each group of v by spec. Groups themselves
// are never reordered. The sort is stable: rows with equal values keep their
// relative input order. A zero spec leaves the view unchanged. The input view
// is not mutated.
func SortRows(v GroupedView, spec SortSpec) GroupedView {
	if spec.Column == "" {
		return v
	}

	out := GroupedView{Grouped: v.Grouped, Groups: make([]Group, len(v.Groups))}
	for i, g := range v.Groups {
		rows := make([]Row, len(g.Rows))
		copy(rows, g.Rows)
		sort.SliceStable(rows, func(a, b int) bool {
			cmp := compare(rows[a], rows[b], spec.Column)
			if spec.Direction == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
		out.Groups[i] = Group{Key: g.Key, RowCount: g.RowCount, Rows: rows}
	}
	return out
}

// compare orders two rows by the designated column: dates chronologically,
// numbers numerically, strings by code point.
func compare(a, b Row, column Column) int {
	switch column {
	case ColumnDate:
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	case ColumnHoursSpent:
		switch {
		case a.HoursSpent < b.HoursSpent:
			return -1
		case a.HoursSpent > b.HoursSpent:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(a.CellText(column), b.CellText(column))
	}
}
