package database

import (
	"context"

	"maintdesk/internal/models"

	"github.com/jinzhu/gorm"
)

// Store provides gorm-backed persistence for equipment and maintenance
// records. It implements the api.Store interface.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an open database connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListEquipment returns all equipment, oldest first
func (s *Store) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	if err := s.db.Order("created_at").Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

// GetEquipment returns the equipment with the given id
func (s *Store) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := s.db.Where("id = ?", id).First(&equipment).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// CreateEquipment persists a new equipment item, assigning its id
func (s *Store) CreateEquipment(ctx context.Context, equipment *models.Equipment) error {
	return s.db.Create(equipment).Error
}

// UpdateEquipment saves the full equipment row
func (s *Store) UpdateEquipment(ctx context.Context, equipment *models.Equipment) error {
	return s.db.Save(equipment).Error
}

// DeleteEquipment removes the equipment with the given id. Maintenance
// records referencing it are left in place and resolve to "Unknown" in views.
func (s *Store) DeleteEquipment(ctx context.Context, id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Equipment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListMaintenanceRecords returns all maintenance records, oldest first
func (s *Store) ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	if err := s.db.Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetMaintenanceRecord returns the record with the given id
func (s *Store) GetMaintenanceRecord(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := s.db.Where("id = ?", id).First(&record).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateMaintenanceRecord persists a new maintenance record, assigning its id
func (s *Store) CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	return s.db.Create(record).Error
}

// UpdateMaintenanceRecord saves the full record row
func (s *Store) UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	return s.db.Save(record).Error
}

// DeleteMaintenanceRecord removes the record with the given id
func (s *Store) DeleteMaintenanceRecord(ctx context.Context, id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.MaintenanceRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
