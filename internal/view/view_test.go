package view

import (
	"time"

	"maintdesk/internal/models"
)

// Shared fixtures: the two-record data set used across pipeline tests.

func testEquipment() []models.Equipment {
	return []models.Equipment{
		{ID: "E1", Name: "Press", Department: models.DepartmentMachining},
		{ID: "E2", Name: "Lathe", Department: models.DepartmentMachining},
	}
}

func testRecords() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		{
			ID:               "1",
			EquipmentID:      "E1",
			Date:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Type:             models.MaintenancePreventive,
			Technician:       "Dana Reyes",
			HoursSpent:       3,
			Description:      "Quarterly hydraulic check",
			Priority:         models.PriorityHigh,
			CompletionStatus: models.CompletionComplete,
		},
		{
			ID:               "2",
			EquipmentID:      "E2",
			Date:             time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Type:             models.MaintenanceRepair,
			Technician:       "Miguel Santos",
			HoursSpent:       5.5,
			Description:      "Replaced worn spindle bearing",
			Priority:         models.PriorityLow,
			CompletionStatus: models.CompletionIncomplete,
		},
	}
}

func testRows() []Row {
	return Join(testRecords(), testEquipment())
}

func rowIDs(rows []Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
