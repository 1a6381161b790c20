package api

import (
	"context"
	"net/http"

	"maintdesk/internal/models"
	"maintdesk/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// Store represents the persistence interface the API depends on
type Store interface {
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*models.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *models.Equipment) error
	UpdateEquipment(ctx context.Context, equipment *models.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error

	ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error)
	GetMaintenanceRecord(ctx context.Context, id string) (*models.MaintenanceRecord, error)
	CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error
	UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error
	DeleteMaintenanceRecord(ctx context.Context, id string) error
}

// Server is the REST API for equipment and maintenance records
type Server struct {
	router  *gin.Engine
	store   Store
	monitor *monitoring.Monitor
	metrics *monitoring.Collector
	hub     *Hub
}

// NewServer creates the API server and wires its routes
func NewServer(store Store, monitor *monitoring.Monitor, metrics *monitoring.Collector) *Server {
	s := &Server{
		router:  gin.Default(),
		store:   store,
		monitor: monitor,
		metrics: metrics,
		hub:     NewHub(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.router.Use(s.requestMetrics())

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "maintdesk API is running"})
	})

	// Change feed for table clients
	s.router.GET("/ws", s.handleWebSocket)

	v1 := s.router.Group("/api/v1")
	{
		// Equipment management
		v1.GET("/equipment", s.ListEquipment)
		v1.POST("/equipment", s.CreateEquipment)
		v1.PUT("/equipment/:id", s.UpdateEquipment)
		v1.DELETE("/equipment/:id", s.DeleteEquipment)
		v1.DELETE("/equipment", s.DeleteEquipment)

		// Maintenance records
		v1.GET("/maintenance-records", s.ListMaintenanceRecords)
		v1.POST("/maintenance-records", s.CreateMaintenanceRecord)
		v1.PUT("/maintenance-records/:id", s.UpdateMaintenanceRecord)
		v1.DELETE("/maintenance-records/:id", s.DeleteMaintenanceRecord)
		v1.DELETE("/maintenance-records", s.DeleteMaintenanceRecord)

		// Server-rendered table view
		v1.GET("/maintenance-records/view", s.MaintenanceRecordsView)

		// Runtime metrics snapshot
		v1.GET("/status", s.GetStatus)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetStatus returns the monitor's runtime metrics snapshot
func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}

// deleteID resolves the target id for DELETE requests, which accept either a
// path parameter or an ?id= query parameter.
func deleteID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}
