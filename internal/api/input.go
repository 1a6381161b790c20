package api

import (
	"time"

	"maintdesk/internal/models"
)

// EquipmentInput carries the constraint table for equipment creation. The
// same constraints are reapplied to the merged entity on update.
type EquipmentInput struct {
	Name         string    `json:"name" validate:"required,min=3"`
	Location     string    `json:"location" validate:"required"`
	Department   string    `json:"department" validate:"required,oneof=Machining Assembly Packaging Shipping"`
	Model        string    `json:"model" validate:"required"`
	SerialNumber string    `json:"serialNumber" validate:"required,alphanum"`
	InstallDate  time.Time `json:"installDate" validate:"required,notfuture"`
	Status       string    `json:"status" validate:"required,oneof=Operational Down Maintenance Retired"`
}

// Equipment builds the entity the input describes
func (in EquipmentInput) Equipment() models.Equipment {
	return models.Equipment{
		Name:         in.Name,
		Location:     in.Location,
		Department:   models.Department(in.Department),
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		InstallDate:  in.InstallDate,
		Status:       models.EquipmentStatus(in.Status),
	}
}

// equipmentInput rebuilds the constraint-table view of an entity so merged
// updates are validated the same way as creations.
func equipmentInput(e models.Equipment) EquipmentInput {
	return EquipmentInput{
		Name:         e.Name,
		Location:     e.Location,
		Department:   string(e.Department),
		Model:        e.Model,
		SerialNumber: e.SerialNumber,
		InstallDate:  e.InstallDate,
		Status:       string(e.Status),
	}
}

// EquipmentUpdate carries a partial equipment update; absent fields leave
// the stored value untouched.
type EquipmentUpdate struct {
	Name         *string    `json:"name"`
	Location     *string    `json:"location"`
	Department   *string    `json:"department"`
	Model        *string    `json:"model"`
	SerialNumber *string    `json:"serialNumber"`
	InstallDate  *time.Time `json:"installDate"`
	Status       *string    `json:"status"`
}

// Apply merges the update into the stored entity
func (u EquipmentUpdate) Apply(e *models.Equipment) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Department != nil {
		e.Department = models.Department(*u.Department)
	}
	if u.Model != nil {
		e.Model = *u.Model
	}
	if u.SerialNumber != nil {
		e.SerialNumber = *u.SerialNumber
	}
	if u.InstallDate != nil {
		e.InstallDate = *u.InstallDate
	}
	if u.Status != nil {
		e.Status = models.EquipmentStatus(*u.Status)
	}
}

// MaintenanceRecordInput carries the constraint table for record creation
type MaintenanceRecordInput struct {
	EquipmentID      string    `json:"equipmentId" validate:"required"`
	Date             time.Time `json:"date" validate:"required,notfuture"`
	Type             string    `json:"type" validate:"required,oneof=Preventive Repair Emergency"`
	Technician       string    `json:"technician" validate:"required,min=2"`
	HoursSpent       float64   `json:"hoursSpent" validate:"required,gt=0,lte=24"`
	Description      string    `json:"description" validate:"required,min=10"`
	PartsReplaced    []string  `json:"partsReplaced"`
	Priority         string    `json:"priority" validate:"required,oneof=Low Medium High"`
	CompletionStatus string    `json:"completionStatus" validate:"required,oneof=Complete Incomplete 'Pending Parts'"`
}

// Record builds the entity the input describes
func (in MaintenanceRecordInput) Record() models.MaintenanceRecord {
	return models.MaintenanceRecord{
		EquipmentID:      in.EquipmentID,
		Date:             in.Date,
		Type:             models.MaintenanceType(in.Type),
		Technician:       in.Technician,
		HoursSpent:       in.HoursSpent,
		Description:      in.Description,
		PartsReplaced:    models.PartsList(in.PartsReplaced),
		Priority:         models.Priority(in.Priority),
		CompletionStatus: models.CompletionStatus(in.CompletionStatus),
	}
}

func recordInput(r models.MaintenanceRecord) MaintenanceRecordInput {
	return MaintenanceRecordInput{
		EquipmentID:      r.EquipmentID,
		Date:             r.Date,
		Type:             string(r.Type),
		Technician:       r.Technician,
		HoursSpent:       r.HoursSpent,
		Description:      r.Description,
		PartsReplaced:    []string(r.PartsReplaced),
		Priority:         string(r.Priority),
		CompletionStatus: string(r.CompletionStatus),
	}
}

// MaintenanceRecordUpdate carries a partial record update
type MaintenanceRecordUpdate struct {
	EquipmentID      *string    `json:"equipmentId"`
	Date             *time.Time `json:"date"`
	Type             *string    `json:"type"`
	Technician       *string    `json:"technician"`
	HoursSpent       *float64   `json:"hoursSpent"`
	Description      *string    `json:"description"`
	PartsReplaced    *[]string  `json:"partsReplaced"`
	Priority         *string    `json:"priority"`
	CompletionStatus *string    `json:"completionStatus"`
}

// Apply merges the update into the stored entity
func (u MaintenanceRecordUpdate) Apply(r *models.MaintenanceRecord) {
	if u.EquipmentID != nil {
		r.EquipmentID = *u.EquipmentID
	}
	if u.Date != nil {
		r.Date = *u.Date
	}
	if u.Type != nil {
		r.Type = models.MaintenanceType(*u.Type)
	}
	if u.Technician != nil {
		r.Technician = *u.Technician
	}
	if u.HoursSpent != nil {
		r.HoursSpent = *u.HoursSpent
	}
	if u.PartsReplaced != nil {
		r.PartsReplaced = models.PartsList(*u.PartsReplaced)
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Priority != nil {
		r.Priority = models.Priority(*u.Priority)
	}
	if u.CompletionStatus != nil {
		r.CompletionStatus = models.CompletionStatus(*u.CompletionStatus)
	}
}
