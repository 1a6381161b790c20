package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// ErrNotFound is returned by stores when no entity matches the requested id.
var ErrNotFound = errors.New("record not found")

// MaintenanceRecord represents a single maintenance job performed on a piece
// of equipment. Records reference equipment by id and are deleted
// independently of it.
type MaintenanceRecord struct {
	ID               string           `json:"id" gorm:"primary_key"`
	EquipmentID      string           `json:"equipmentId" gorm:"index"`
	Date             time.Time        `json:"date"`
	Type             MaintenanceType  `json:"type"`
	Technician       string           `json:"technician"`
	HoursSpent       float64          `json:"hoursSpent"`
	Description      string           `json:"description"`
	PartsReplaced    PartsList        `json:"partsReplaced" gorm:"type:text"`
	Priority         Priority         `json:"priority"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// BeforeCreate assigns the server-side id
func (r *MaintenanceRecord) BeforeCreate(scope *gorm.Scope) error {
	if r.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// MaintenanceType represents the kind of maintenance performed
type MaintenanceType string

const (
	// Maintenance types
	MaintenancePreventive MaintenanceType = "Preventive"
	MaintenanceRepair     MaintenanceType = "Repair"
	MaintenanceEmergency  MaintenanceType = "Emergency"
)

// Priority represents the urgency of a maintenance record
type Priority string

const (
	// Priorities
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// CompletionStatus represents how far along a maintenance job is
type CompletionStatus string

const (
	// Completion statuses
	CompletionComplete     CompletionStatus = "Complete"
	CompletionIncomplete   CompletionStatus = "Incomplete"
	CompletionPendingParts CompletionStatus = "Pending Parts"
)

// PartsList is an ordered list of replaced part names, stored as a single
// JSON text column.
type PartsList []string

// Value implements driver.Valuer
func (p PartsList) Value() (driver.Value, error) {
	if p == nil {
		p = PartsList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (p *PartsList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = PartsList{}
		return nil
	case []byte:
		if len(v) == 0 {
			*p = PartsList{}
			return nil
		}
		return json.Unmarshal(v, p)
	case string:
		if v == "" {
			*p = PartsList{}
			return nil
		}
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported parts list column type %T", src)
	}
}
