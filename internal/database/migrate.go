package database

import (
	"time"

	"maintdesk/internal/models"

	"github.com/jinzhu/gorm"
)

// InitializeDatabase creates all required tables and, when requested,
// ensures a baseline data set exists.
func InitializeDatabase(db *gorm.DB, seed bool) error {
	if err := db.AutoMigrate(
		&models.Equipment{},
		&models.MaintenanceRecord{},
	).Error; err != nil {
		return err
	}

	if seed {
		seedDefaultData(db)
	}
	return nil
}

// seedDefaultData ensures essential data exists in the database
func seedDefaultData(db *gorm.DB) {
	var equipmentCount int64
	db.Model(&models.Equipment{}).Count(&equipmentCount)
	if equipmentCount == 0 {
		defaultEquipment := []models.Equipment{
			{
				Name:         "Hydraulic Press",
				Location:     "Building A",
				Department:   models.DepartmentMachining,
				Model:        "HP-2000",
				SerialNumber: "HP2000A1",
				InstallDate:  time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
				Status:       models.EquipmentStatusOperational,
			},
			{
				Name:         "CNC Lathe",
				Location:     "Building A",
				Department:   models.DepartmentMachining,
				Model:        "CL-500",
				SerialNumber: "CL500B7",
				InstallDate:  time.Date(2021, 8, 2, 0, 0, 0, 0, time.UTC),
				Status:       models.EquipmentStatusOperational,
			},
			{
				Name:         "Conveyor Belt",
				Location:     "Building C",
				Department:   models.DepartmentPackaging,
				Model:        "CB-340",
				SerialNumber: "CB340X2",
				InstallDate:  time.Date(2020, 11, 23, 0, 0, 0, 0, time.UTC),
				Status:       models.EquipmentStatusMaintenance,
			},
		}
		for _, equipment := range defaultEquipment {
			db.Create(&equipment)
		}
	}
}
