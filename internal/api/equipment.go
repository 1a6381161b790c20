package api

import (
	"errors"
	"net/http"

	"maintdesk/internal/models"
	"maintdesk/internal/validation"

	"github.com/gin-gonic/gin"
)

// Equipment handlers

func (s *Server) ListEquipment(c *gin.Context) {
	equipment, err := s.store.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.metrics.SetEntityCount("equipment", len(equipment))
	c.JSON(http.StatusOK, equipment)
}

func (s *Server) CreateEquipment(c *gin.Context) {
	var in EquipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fieldErrs := validation.Fields(in); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": fieldErrs})
		return
	}

	equipment := in.Equipment()
	if err := s.store.CreateEquipment(c.Request.Context(), &equipment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("equipment", "created")
	s.hub.BroadcastChange("equipment", "created", equipment.ID)
	c.JSON(http.StatusCreated, equipment)
}

func (s *Server) UpdateEquipment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing equipment ID"})
		return
	}

	var update EquipmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := s.store.GetEquipment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	update.Apply(equipment)
	if fieldErrs := validation.Fields(equipmentInput(*equipment)); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": fieldErrs})
		return
	}

	if err := s.store.UpdateEquipment(c.Request.Context(), equipment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("equipment", "updated")
	s.hub.BroadcastChange("equipment", "updated", equipment.ID)
	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment removes an equipment item. Records referencing it are left
// in place; their rows render the "Unknown" equipment name from then on.
func (s *Server) DeleteEquipment(c *gin.Context) {
	id := deleteID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing equipment ID"})
		return
	}

	if err := s.store.DeleteEquipment(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.monitor.RecordEntityChange("equipment", "deleted")
	s.hub.BroadcastChange("equipment", "deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "equipment deleted successfully"})
}
