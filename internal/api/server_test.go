package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maintdesk/internal/models"
	"maintdesk/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for handler tests
type fakeStore struct {
	equipment []models.Equipment
	records   []models.MaintenanceRecord
	nextID    int
	failAll   bool
}

var errStore = errors.New("store failure")

func (f *fakeStore) assignID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.equipment, nil
}

func (f *fakeStore) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	if f.failAll {
		return nil, errStore
	}
	for i := range f.equipment {
		if f.equipment[i].ID == id {
			return &f.equipment[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) CreateEquipment(ctx context.Context, equipment *models.Equipment) error {
	if f.failAll {
		return errStore
	}
	equipment.ID = f.assignID()
	f.equipment = append(f.equipment, *equipment)
	return nil
}

func (f *fakeStore) UpdateEquipment(ctx context.Context, equipment *models.Equipment) error {
	if f.failAll {
		return errStore
	}
	for i := range f.equipment {
		if f.equipment[i].ID == equipment.ID {
			f.equipment[i] = *equipment
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeStore) DeleteEquipment(ctx context.Context, id string) error {
	if f.failAll {
		return errStore
	}
	for i := range f.equipment {
		if f.equipment[i].ID == id {
			f.equipment = append(f.equipment[:i], f.equipment[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeStore) ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	return f.records, nil
}

func (f *fakeStore) GetMaintenanceRecord(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	if f.failAll {
		return nil, errStore
	}
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) CreateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	if f.failAll {
		return errStore
	}
	record.ID = f.assignID()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeStore) UpdateMaintenanceRecord(ctx context.Context, record *models.MaintenanceRecord) error {
	if f.failAll {
		return errStore
	}
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeStore) DeleteMaintenanceRecord(ctx context.Context, id string) error {
	if f.failAll {
		return errStore
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func newTestServer(store Store) *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(store, monitoring.NewMonitor(), monitoring.NewCollector())
}

func seededStore() *fakeStore {
	return &fakeStore{
		equipment: []models.Equipment{
			{
				ID:           "E1",
				Name:         "Hydraulic Press",
				Location:     "Building A",
				Department:   models.DepartmentMachining,
				Model:        "HP-2000",
				SerialNumber: "HP2000A1",
				InstallDate:  time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
				Status:       models.EquipmentStatusOperational,
			},
			{
				ID:           "E2",
				Name:         "CNC Lathe",
				Location:     "Building A",
				Department:   models.DepartmentMachining,
				Model:        "CL-500",
				SerialNumber: "CL500B7",
				InstallDate:  time.Date(2021, 8, 2, 0, 0, 0, 0, time.UTC),
				Status:       models.EquipmentStatusOperational,
			},
		},
		records: []models.MaintenanceRecord{
			{
				ID:               "R1",
				EquipmentID:      "E1",
				Date:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Type:             models.MaintenancePreventive,
				Technician:       "Dana Reyes",
				HoursSpent:       3,
				Description:      "Quarterly hydraulic fluid change",
				Priority:         models.PriorityHigh,
				CompletionStatus: models.CompletionComplete,
			},
			{
				ID:               "R2",
				EquipmentID:      "E2",
				Date:             time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
				Type:             models.MaintenanceRepair,
				Technician:       "Miguel Santos",
				HoursSpent:       5.5,
				Description:      "Replaced worn spindle bearing",
				Priority:         models.PriorityLow,
				CompletionStatus: models.CompletionIncomplete,
			},
		},
	}
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestListEquipment(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodGet, "/api/v1/equipment", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var equipment []models.Equipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &equipment))
	assert.Len(t, equipment, 2)
	assert.Equal(t, "Hydraulic Press", equipment[0].Name)
}

func TestCreateEquipment(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/equipment", map[string]interface{}{
		"name":         "Drill Press",
		"location":     "Building B",
		"department":   "Assembly",
		"model":        "DP-40",
		"serialNumber": "DP40C3",
		"installDate":  "2023-04-01T00:00:00Z",
		"status":       "Operational",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Equipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Drill Press", created.Name)
}

func TestCreateEquipmentMissingFields(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/equipment", map[string]interface{}{
		"name": "Drill Press",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Fields, "location")
	assert.Contains(t, response.Fields, "serialNumber")
	assert.Contains(t, response.Fields, "installDate")
}

func TestCreateEquipmentInvalidSerialNumber(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/equipment", map[string]interface{}{
		"name":         "Drill Press",
		"location":     "Building B",
		"department":   "Assembly",
		"model":        "DP-40",
		"serialNumber": "DP-40/C3",
		"installDate":  "2023-04-01T00:00:00Z",
		"status":       "Operational",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEquipment(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPut, "/api/v1/equipment/E1", map[string]interface{}{
		"status": "Down",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Equipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.EquipmentStatusDown, updated.Status)
	// Untouched fields survive the partial update
	assert.Equal(t, "Hydraulic Press", updated.Name)
}

func TestUpdateEquipmentNotFound(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPut, "/api/v1/equipment/missing", map[string]interface{}{
		"status": "Down",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEquipmentByPathAndQuery(t *testing.T) {
	store := seededStore()
	server := newTestServer(store)

	w := doJSON(t, server, http.MethodDelete, "/api/v1/equipment/E1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.equipment, 1)

	w = doJSON(t, server, http.MethodDelete, "/api/v1/equipment?id=E2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.equipment)
}

func TestDeleteEquipmentMissingID(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodDelete, "/api/v1/equipment", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEquipmentLeavesRecordsOrphaned(t *testing.T) {
	store := seededStore()
	server := newTestServer(store)

	w := doJSON(t, server, http.MethodDelete, "/api/v1/equipment/E1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Records referencing the deleted equipment stay; the view renders Unknown
	assert.Len(t, store.records, 2)

	w = doJSON(t, server, http.MethodGet, "/api/v1/maintenance-records/view", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rendered struct {
		Groups []struct {
			Rows []struct {
				ID            string `json:"id"`
				EquipmentName string `json:"equipmentName"`
			} `json:"rows"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rendered))
	require.Len(t, rendered.Groups, 1)
	assert.Equal(t, "Unknown", rendered.Groups[0].Rows[0].EquipmentName)
	assert.Equal(t, "CNC Lathe", rendered.Groups[0].Rows[1].EquipmentName)
}

func TestCreateMaintenanceRecord(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/maintenance-records", map[string]interface{}{
		"equipmentId":      "E1",
		"date":             "2024-02-10T00:00:00Z",
		"type":             "Repair",
		"technician":       "Dana Reyes",
		"hoursSpent":       2.5,
		"description":      "Replaced pressure relief valve",
		"partsReplaced":    []string{"relief valve"},
		"priority":         "Medium",
		"completionStatus": "Complete",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.MaintenanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PartsList{"relief valve"}, created.PartsReplaced)
}

func TestCreateMaintenanceRecordUnknownEquipment(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/maintenance-records", map[string]interface{}{
		"equipmentId":      "missing",
		"date":             "2024-02-10T00:00:00Z",
		"type":             "Repair",
		"technician":       "Dana Reyes",
		"hoursSpent":       2.5,
		"description":      "Replaced pressure relief valve",
		"priority":         "Medium",
		"completionStatus": "Complete",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMaintenanceRecordValidation(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPost, "/api/v1/maintenance-records", map[string]interface{}{
		"equipmentId":      "E1",
		"date":             "2024-02-10T00:00:00Z",
		"type":             "Repair",
		"technician":       "D",
		"hoursSpent":       30,
		"description":      "too short",
		"priority":         "Medium",
		"completionStatus": "Complete",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Fields, "technician")
	assert.Contains(t, response.Fields, "hoursSpent")
	assert.Contains(t, response.Fields, "description")
}

func TestUpdateMaintenanceRecord(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodPut, "/api/v1/maintenance-records/R2", map[string]interface{}{
		"completionStatus": "Complete",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MaintenanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.CompletionComplete, updated.CompletionStatus)
	assert.Equal(t, "Miguel Santos", updated.Technician)
}

func TestDeleteMaintenanceRecordNotFound(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodDelete, "/api/v1/maintenance-records/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreFailureMapsTo500(t *testing.T) {
	server := newTestServer(&fakeStore{failAll: true})

	w := doJSON(t, server, http.MethodGet, "/api/v1/equipment", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "internal server error", response["error"])
}

func TestMaintenanceRecordsView(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodGet, "/api/v1/maintenance-records/view?groupBy=priority&sortBy=date&dir=asc", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var rendered struct {
		Grouped bool `json:"grouped"`
		Groups  []struct {
			Key      string `json:"key"`
			RowCount int    `json:"rowCount"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rendered))
	assert.True(t, rendered.Grouped)
	require.Len(t, rendered.Groups, 2)
	assert.Equal(t, "High", rendered.Groups[0].Key)
	assert.Equal(t, "Low", rendered.Groups[1].Key)
}

func TestMaintenanceRecordsViewFilter(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodGet, "/api/v1/maintenance-records/view?filter=lathe", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var rendered struct {
		Groups []struct {
			RowCount int `json:"rowCount"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rendered))
	require.Len(t, rendered.Groups, 1)
	assert.Equal(t, 1, rendered.Groups[0].RowCount)
}

func TestMaintenanceRecordsViewUnknownColumn(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodGet, "/api/v1/maintenance-records/view?groupBy=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(seededStore())

	w := doJSON(t, server, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
