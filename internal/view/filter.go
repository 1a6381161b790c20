package view

import "strings"

// Filter retains the rows whose searchable text contains query,
// case-insensitively. An empty query is the identity. Surviving rows keep
// their input order.
func Filter(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}

	q := strings.ToLower(query)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(searchText(r), q) {
			out = append(out, r)
		}
	}
	return out
}

// searchText is the lowercased concatenation of every column's rendered cell
// text for the row.
func searchText(r Row) string {
	var b strings.Builder
	for i, c := range Columns() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.CellText(c))
	}
	return strings.ToLower(b.String())
}
