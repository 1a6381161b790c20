package view

import (
	"testing"
	"time"

	"maintdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSortZeroSpecIsIdentity(t *testing.T) {
	v := GroupRows(testRows(), "")

	sorted := SortRows(v, SortSpec{})

	assert.Equal(t, v, sorted)
}

func TestSortByDateAscending(t *testing.T) {
	v := GroupRows(testRows(), "")

	sorted := SortRows(v, SortSpec{Column: ColumnDate, Direction: Ascending})

	// Record 2 (Jan 3) comes before record 1 (Jan 5)
	assert.Equal(t, []string{"2", "1"}, rowIDs(sorted.Groups[0].Rows))
}

func TestSortByDateDescending(t *testing.T) {
	v := GroupRows(testRows(), "")

	sorted := SortRows(v, SortSpec{Column: ColumnDate, Direction: Descending})

	assert.Equal(t, []string{"1", "2"}, rowIDs(sorted.Groups[0].Rows))
}

func TestSortNumericNotLexicographic(t *testing.T) {
	rows := []Row{
		{MaintenanceRecord: models.MaintenanceRecord{ID: "a", HoursSpent: 10}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "b", HoursSpent: 2}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "c", HoursSpent: 1.5}},
	}
	v := GroupRows(rows, "")

	sorted := SortRows(v, SortSpec{Column: ColumnHoursSpent, Direction: Ascending})

	// Lexicographic ordering would put "10" before "2"
	assert.Equal(t, []string{"c", "b", "a"}, rowIDs(sorted.Groups[0].Rows))
}

func TestSortIsStable(t *testing.T) {
	rows := []Row{
		{MaintenanceRecord: models.MaintenanceRecord{ID: "1", Priority: models.PriorityHigh, Technician: "Zoe"}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "2", Priority: models.PriorityLow, Technician: "Amir"}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "3", Priority: models.PriorityHigh, Technician: "Bea"}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "4", Priority: models.PriorityHigh, Technician: "Caleb"}},
	}
	v := GroupRows(rows, "")

	sorted := SortRows(v, SortSpec{Column: ColumnPriority, Direction: Ascending})

	// "High" < "Low" by code point; equal-priority rows keep input order
	assert.Equal(t, []string{"1", "3", "4", "2"}, rowIDs(sorted.Groups[0].Rows))
}

func TestSortWithinGroupsOnly(t *testing.T) {
	rows := []Row{
		{MaintenanceRecord: models.MaintenanceRecord{ID: "1", Priority: models.PriorityLow, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "2", Priority: models.PriorityHigh, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}},
		{MaintenanceRecord: models.MaintenanceRecord{ID: "3", Priority: models.PriorityLow, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}},
	}
	v := GroupRows(rows, ColumnPriority)

	sorted := SortRows(v, SortSpec{Column: ColumnDate, Direction: Ascending})

	// Group order untouched: Low first (first occurrence), then High
	assert.Equal(t, "Low", sorted.Groups[0].Key)
	assert.Equal(t, "High", sorted.Groups[1].Key)

	// Rows reordered within the Low group only
	assert.Equal(t, []string{"3", "1"}, rowIDs(sorted.Groups[0].Rows))
	assert.Equal(t, []string{"2"}, rowIDs(sorted.Groups[1].Rows))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	v := GroupRows(testRows(), "")
	before := rowIDs(v.Groups[0].Rows)

	SortRows(v, SortSpec{Column: ColumnDate, Direction: Ascending})

	assert.Equal(t, before, rowIDs(v.Groups[0].Rows))
}
