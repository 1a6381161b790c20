package api

import (
	"errors"
	"net/http"

	"maintdesk/internal/models"
	"maintdesk/internal/validation"
	"maintdesk/internal/view"

	"github.com/gin-gonic/gin"
)

// Maintenance record handlers

func (s *Server) ListMaintenanceRecords(c *gin.Context) {
	records, err := s.store.ListMaintenanceRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.metrics.SetEntityCount("maintenance_records", len(records))
	c.JSON(http.StatusOK, records)
}

func (s *Server) CreateMaintenanceRecord(c *gin.Context) {
	var in MaintenanceRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fieldErrs := validation.Fields(in); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": fieldErrs})
		return
	}

	// A record must reference existing equipment at creation time
	if _, err := s.store.GetEquipment(c.Request.Context(), in.EquipmentID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "equipmentId does not reference existing equipment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	record := in.Record()
	if err := s.store.CreateMaintenanceRecord(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("maintenance_record", "created")
	s.hub.BroadcastChange("maintenance-record", "created", record.ID)
	c.JSON(http.StatusCreated, record)
}

func (s *Server) UpdateMaintenanceRecord(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing maintenance record ID"})
		return
	}

	var update MaintenanceRecordUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.store.GetMaintenanceRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "maintenance record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	update.Apply(record)
	if fieldErrs := validation.Fields(recordInput(*record)); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": fieldErrs})
		return
	}

	if err := s.store.UpdateMaintenanceRecord(c.Request.Context(), record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("maintenance_record", "updated")
	s.hub.BroadcastChange("maintenance-record", "updated", record.ID)
	c.JSON(http.StatusOK, record)
}

func (s *Server) DeleteMaintenanceRecord(c *gin.Context) {
	id := deleteID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing maintenance record ID"})
		return
	}

	if err := s.store.DeleteMaintenanceRecord(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "maintenance record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("maintenance_record", "deleted")
	s.hub.BroadcastChange("maintenance-record", "deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "maintenance record deleted successfully"})
}

// MaintenanceRecordsView renders the joined, filtered, grouped, and sorted
// table over the current collections. Query parameters mirror the view
// state: filter, groupBy, sortBy, dir.
func (s *Server) MaintenanceRecordsView(c *gin.Context) {
	records, err := s.store.ListMaintenanceRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	equipment, err := s.store.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	composer := view.NewComposer()
	composer.SetFilterText(c.Query("filter"))

	if g := view.Column(c.Query("groupBy")); g != "" {
		if !g.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown groupBy column"})
			return
		}
		composer.SetGrouping(g)
	}

	if sb := view.Column(c.Query("sortBy")); sb != "" {
		if !sb.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sortBy column"})
			return
		}
		direction := view.Ascending
		if c.Query("dir") == string(view.Descending) {
			direction = view.Descending
		}
		composer.SetSort(sb, direction)
	}

	c.JSON(http.StatusOK, composer.Render(records, equipment))
}
