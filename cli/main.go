package main

import (
	"fmt"
	"os"
	"strings"

	"maintdesk/internal/models"
	"maintdesk/internal/view"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	groupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#30d158"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// columnWidths controls cell padding in the rendered table
var columnWidths = map[view.Column]int{
	view.ColumnEquipmentName:    18,
	view.ColumnDate:             12,
	view.ColumnType:             12,
	view.ColumnTechnician:       14,
	view.ColumnHoursSpent:       12,
	view.ColumnDescription:      30,
	view.ColumnPriority:         10,
	view.ColumnCompletionStatus: 15,
}

// Model defines the application state
type Model struct {
	client      *ApiClient
	composer    *view.Composer
	records     []models.MaintenanceRecord
	equipment   []models.Equipment
	filterInput textinput.Model
	spinner     spinner.Model
	loading     bool
	filtering   bool
	error       string
}

type dataLoadedMsg struct {
	records   []models.MaintenanceRecord
	equipment []models.Equipment
}

type errMsg struct {
	err error
}

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Search all columns..."
	ti.CharLimit = 64
	ti.Width = 30

	return Model{
		client:      NewApiClient(),
		composer:    view.NewComposer(),
		filterInput: ti,
		spinner:     s,
		loading:     true,
	}
}

// Init starts the initial data load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadData())
}

// loadData fetches both source collections from the API
func (m Model) loadData() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		records, err := client.FetchMaintenanceRecords()
		if err != nil {
			return errMsg{err}
		}
		equipment, err := client.FetchEquipment()
		if err != nil {
			return errMsg{err}
		}
		return dataLoadedMsg{records: records, equipment: equipment}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.records = msg.records
		m.equipment = msg.equipment
		m.loading = false
		m.error = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.error = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// updateFilterInput routes keys to the filter box while it has focus
func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.composer.SetFilterText(m.filterInput.Value())
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "g":
		m.composer.SetGrouping(nextGrouping(m.composer.State().GroupingColumn))
		return m, nil

	case "0":
		m.composer.ClearSort()
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8":
		columns := view.Columns()
		i := int(msg.String()[0] - '1')
		if i < len(columns) {
			m.composer.ToggleSort(columns[i])
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadData())
	}

	return m, nil
}

// nextGrouping cycles none → equipmentName → type → priority → status → none
func nextGrouping(current view.Column) view.Column {
	groupable := view.GroupableColumns()
	if current == "" {
		return groupable[0]
	}
	for i, c := range groupable {
		if c == current {
			if i == len(groupable)-1 {
				return ""
			}
			return groupable[i+1]
		}
	}
	return ""
}

// View renders the table
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("maintdesk — Maintenance Records"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("%s Loading data...\n", m.spinner.View()))
		return docStyle.Render(b.String())
	}

	if m.error != "" {
		b.WriteString(errorStyle.Render("Error: " + m.error))
		b.WriteString("\n\n")
	}

	b.WriteString("Filter: " + m.filterInput.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.stateLine()))
	b.WriteString("\n\n")

	rendered := m.composer.Render(m.records, m.equipment)
	b.WriteString(renderTable(rendered))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("/ filter · g cycle grouping · 1-8 toggle sort · 0 clear sort · r refresh · q quit"))
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

// stateLine summarizes the active view state
func (m Model) stateLine() string {
	state := m.composer.State()

	grouping := "none"
	if state.GroupingColumn != "" {
		grouping = state.GroupingColumn.Title()
	}

	sorting := "none"
	if state.Sort.Column != "" {
		sorting = fmt.Sprintf("%s (%s)", state.Sort.Column.Title(), state.Sort.Direction)
	}

	return fmt.Sprintf("Grouped by: %s · Sorted by: %s", grouping, sorting)
}

// renderTable lays out the header row, group headers, and body rows
func renderTable(v view.RenderableView) string {
	var b strings.Builder

	var headerCells []string
	for _, h := range v.Headers {
		label := h.Title
		switch h.Sort {
		case view.Ascending:
			label += " ↑"
		case view.Descending:
			label += " ↓"
		}
		headerCells = append(headerCells, pad(label, columnWidths[h.Column]))
	}
	b.WriteString(headerStyle.Render(strings.Join(headerCells, " ")))
	b.WriteString("\n")

	for _, g := range v.Groups {
		if v.Grouped {
			b.WriteString(groupHeaderStyle.Render(fmt.Sprintf("▸ %s (%d)", g.Key, g.RowCount)))
			b.WriteString("\n")
		}
		for _, row := range g.Rows {
			var cells []string
			for _, h := range v.Headers {
				cells = append(cells, pad(row.CellText(h.Column), columnWidths[h.Column]))
			}
			b.WriteString(strings.Join(cells, " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// pad truncates or right-pads a cell to the column width
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
