// Package view implements the maintenance-records table pipeline: join the
// record and equipment collections, then filter, group, and sort the result
// into a render-ready structure. Every stage is a pure function over its
// input; the Composer owns the mutable view state that drives them.
package view

import (
	"strconv"

	"maintdesk/internal/models"
)

// UnknownEquipment is the display name used when a record's equipmentId
// matches nothing in the current equipment collection.
const UnknownEquipment = "Unknown"

// Column identifies a table column
type Column string

const (
	ColumnEquipmentName    Column = "equipmentName"
	ColumnDate             Column = "date"
	ColumnType             Column = "type"
	ColumnTechnician       Column = "technician"
	ColumnHoursSpent       Column = "hoursSpent"
	ColumnDescription      Column = "description"
	ColumnPriority         Column = "priority"
	ColumnCompletionStatus Column = "completionStatus"
)

// Columns returns all table columns in display order
func Columns() []Column {
	return []Column{
		ColumnEquipmentName,
		ColumnDate,
		ColumnType,
		ColumnTechnician,
		ColumnHoursSpent,
		ColumnDescription,
		ColumnPriority,
		ColumnCompletionStatus,
	}
}

// GroupableColumns returns the columns the table can be grouped by
func GroupableColumns() []Column {
	return []Column{
		ColumnEquipmentName,
		ColumnType,
		ColumnPriority,
		ColumnCompletionStatus,
	}
}

// Title returns the column's header label
func (c Column) Title() string {
	switch c {
	case ColumnEquipmentName:
		return "Equipment Name"
	case ColumnDate:
		return "Date"
	case ColumnType:
		return "Type"
	case ColumnTechnician:
		return "Technician"
	case ColumnHoursSpent:
		return "Hours Spent"
	case ColumnDescription:
		return "Description"
	case ColumnPriority:
		return "Priority"
	case ColumnCompletionStatus:
		return "Status"
	default:
		return string(c)
	}
}

// Valid reports whether c names a known column
func (c Column) Valid() bool {
	for _, known := range Columns() {
		if c == known {
			return true
		}
	}
	return false
}

// Row is a maintenance record denormalized with its equipment's display
// name. Rows are recomputed from the source collections on every render and
// never persisted.
type Row struct {
	models.MaintenanceRecord
	EquipmentName string `json:"equipmentName"`
}

// dateLayout is how date cells are rendered for display and filtering
const dateLayout = "2006-01-02"

// CellText renders the column's value the way the table displays it
func (r Row) CellText(c Column) string {
	switch c {
	case ColumnEquipmentName:
		return r.EquipmentName
	case ColumnDate:
		return r.Date.Format(dateLayout)
	case ColumnType:
		return string(r.Type)
	case ColumnTechnician:
		return r.Technician
	case ColumnHoursSpent:
		return strconv.FormatFloat(r.HoursSpent, 'f', -1, 64)
	case ColumnDescription:
		return r.Description
	case ColumnPriority:
		return string(r.Priority)
	case ColumnCompletionStatus:
		return string(r.CompletionStatus)
	default:
		return ""
	}
}
