package view

import (
	"testing"

	"maintdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJoinResolvesEquipmentNames(t *testing.T) {
	rows := Join(testRecords(), testEquipment())

	assert.Len(t, rows, 2)
	assert.Equal(t, "Press", rows[0].EquipmentName)
	assert.Equal(t, "Lathe", rows[1].EquipmentName)
}

func TestJoinUnknownEquipment(t *testing.T) {
	records := []models.MaintenanceRecord{
		{ID: "1", EquipmentID: "missing"},
	}

	rows := Join(records, testEquipment())

	assert.Len(t, rows, 1)
	assert.Equal(t, UnknownEquipment, rows[0].EquipmentName)
}

func TestJoinEmptyEquipment(t *testing.T) {
	rows := Join(testRecords(), nil)

	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, UnknownEquipment, r.EquipmentName)
	}
}

func TestJoinLengthMatchesRecords(t *testing.T) {
	// One row per record, in record order, even with duplicate equipment ids
	records := append(testRecords(), testRecords()...)

	rows := Join(records, testEquipment())

	assert.Len(t, rows, len(records))
	assert.Equal(t, []string{"1", "2", "1", "2"}, rowIDs(rows))
}

func TestJoinIdempotent(t *testing.T) {
	first := Join(testRecords(), testEquipment())
	second := Join(testRecords(), testEquipment())

	assert.Equal(t, first, second)
}

func TestJoinReflectsCurrentEquipment(t *testing.T) {
	records := testRecords()

	rows := Join(records, testEquipment())
	assert.Equal(t, "Press", rows[0].EquipmentName)

	// Renaming equipment must show up on the next join
	renamed := testEquipment()
	renamed[0].Name = "Forge Press"
	rows = Join(records, renamed)
	assert.Equal(t, "Forge Press", rows[0].EquipmentName)

	// Deleting equipment degrades to the sentinel
	rows = Join(records, renamed[1:])
	assert.Equal(t, UnknownEquipment, rows[0].EquipmentName)
	assert.Equal(t, "Lathe", rows[1].EquipmentName)
}
