package view

import "maintdesk/internal/models"

// Join denormalizes each record with the display name of its equipment,
// looked up in the current equipment collection. A lookup miss is not an
// error; the row degrades to the "Unknown" sentinel. The result preserves
// record order and has exactly one row per record.
func Join(records []models.MaintenanceRecord, equipment []models.Equipment) []Row {
	byID := make(map[string]string, len(equipment))
	for _, e := range equipment {
		byID[e.ID] = e.Name
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		name, ok := byID[r.EquipmentID]
		if !ok {
			name = UnknownEquipment
		}
		rows = append(rows, Row{MaintenanceRecord: r, EquipmentName: name})
	}
	return rows
}
