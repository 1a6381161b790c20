package view

// Group is one partition of the row set. When the view is ungrouped there is
// a single group with no key and no rendered header.
type Group struct {
	Key      string `json:"key,omitempty"`
	RowCount int    `json:"rowCount"`
	Rows     []Row  `json:"rows"`
}

// GroupedView is the row set partitioned by the active grouping column
type GroupedView struct {
	Grouped bool    `json:"grouped"`
	Groups  []Group `json:"groups"`
}

// GroupRows partitions rows by the value of column. The empty column yields a
// single implicit group holding all rows. Groups appear in first-occurrence
// order of their key, not key sort order, and rows keep their relative input
// order within each group.
func GroupRows(rows []Row, column Column) GroupedView {
	if column == "" {
		all := make([]Row, len(rows))
		copy(all, rows)
		return GroupedView{
			Groups: []Group{{RowCount: len(all), Rows: all}},
		}
	}

	index := make(map[string]int)
	groups := []Group{}
	for _, r := range rows {
		key := r.CellText(column)
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, r)
		groups[i].RowCount++
	}
	return GroupedView{Grouped: true, Groups: groups}
}
