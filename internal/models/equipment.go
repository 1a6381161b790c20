package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Equipment represents a tracked piece of facility equipment
type Equipment struct {
	ID           string          `json:"id" gorm:"primary_key"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Department   Department      `json:"department"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serialNumber"`
	InstallDate  time.Time       `json:"installDate"`
	Status       EquipmentStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BeforeCreate assigns the server-side id. Ids are opaque to clients and
// immutable once assigned.
func (e *Equipment) BeforeCreate(scope *gorm.Scope) error {
	if e.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// Department represents the facility department an equipment item belongs to
type Department string

const (
	// Departments
	DepartmentMachining Department = "Machining"
	DepartmentAssembly  Department = "Assembly"
	DepartmentPackaging Department = "Packaging"
	DepartmentShipping  Department = "Shipping"
)

// EquipmentStatus represents the operational status of a piece of equipment
type EquipmentStatus string

const (
	// Equipment statuses
	EquipmentStatusOperational EquipmentStatus = "Operational"
	EquipmentStatusDown        EquipmentStatus = "Down"
	EquipmentStatusMaintenance EquipmentStatus = "Maintenance"
	EquipmentStatusRetired     EquipmentStatus = "Retired"
)
