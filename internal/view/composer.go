package view

import "maintdesk/internal/models"

// ViewState is the session-local configuration driving the render pipeline.
// Zero values mean "inactive": empty filter, no grouping, no sort.
type ViewState struct {
	FilterText     string   `json:"filterText"`
	GroupingColumn Column   `json:"groupingColumn,omitempty"`
	Sort           SortSpec `json:"sort,omitempty"`
}

// Header describes one column header of the rendered table, including the
// sort indicator when the column is the active sort column.
type Header struct {
	Column Column    `json:"column"`
	Title  string    `json:"title"`
	Sort   Direction `json:"sort,omitempty"`
}

// RenderableView is the structure a table component iterates to produce its
// header row and body rows.
type RenderableView struct {
	Headers []Header `json:"headers"`
	Grouped bool     `json:"grouped"`
	Groups  []Group  `json:"groups"`
}

// Composer owns the view state and runs the join → filter → group → sort
// pipeline over the source collections. It does not cache across state
// changes; callers re-render after every mutation.
type Composer struct {
	state ViewState
}

// NewComposer creates a composer with inactive filter, grouping, and sort
func NewComposer() *Composer {
	return &Composer{}
}

// State returns the current view state
func (c *Composer) State() ViewState {
	return c.state
}

// SetFilterText replaces the active free-text filter
func (c *Composer) SetFilterText(text string) {
	c.state.FilterText = text
}

// SetGrouping sets the grouping column; the empty column ungroups the view
func (c *Composer) SetGrouping(column Column) {
	c.state.GroupingColumn = column
}

// SetSort sets the sort column and direction explicitly
func (c *Composer) SetSort(column Column, direction Direction) {
	c.state.Sort = SortSpec{Column: column, Direction: direction}
}

// ToggleSort applies header-click semantics: toggling the active sort column
// flips its direction; any other column becomes the sort column, ascending.
func (c *Composer) ToggleSort(column Column) {
	if c.state.Sort.Column == column {
		c.state.Sort.Direction = c.state.Sort.Direction.Flip()
		return
	}
	c.state.Sort = SortSpec{Column: column, Direction: Ascending}
}

// ClearSort deactivates sorting
func (c *Composer) ClearSort() {
	c.state.Sort = SortSpec{}
}

// Render runs the full pipeline over the current source collections. Rows
// are rejoined on every call so equipment names always reflect the equipment
// collection passed in.
func (c *Composer) Render(records []models.MaintenanceRecord, equipment []models.Equipment) RenderableView {
	rows := Join(records, equipment)
	rows = Filter(rows, c.state.FilterText)
	grouped := GroupRows(rows, c.state.GroupingColumn)
	grouped = SortRows(grouped, c.state.Sort)

	return RenderableView{
		Headers: c.headers(),
		Grouped: grouped.Grouped,
		Groups:  grouped.Groups,
	}
}

func (c *Composer) headers() []Header {
	headers := make([]Header, 0, len(Columns()))
	for _, col := range Columns() {
		h := Header{Column: col, Title: col.Title()}
		if c.state.Sort.Column == col {
			h.Sort = c.state.Sort.Direction
		}
		headers = append(headers, h)
	}
	return headers
}
