package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"maintdesk/internal/models"
)

// ApiClient handles API requests to the maintdesk API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("MAINTDESK_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// FetchEquipment retrieves the equipment collection
func (c *ApiClient) FetchEquipment() ([]models.Equipment, error) {
	if c.UseMock {
		return mockEquipment(), nil
	}

	var equipment []models.Equipment
	if err := c.getJSON("/api/v1/equipment", &equipment); err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return equipment, nil
}

// FetchMaintenanceRecords retrieves the maintenance record collection
func (c *ApiClient) FetchMaintenanceRecords() ([]models.MaintenanceRecord, error) {
	if c.UseMock {
		return mockRecords(), nil
	}

	var records []models.MaintenanceRecord
	if err := c.getJSON("/api/v1/maintenance-records", &records); err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance records: %w", err)
	}
	return records, nil
}

// CreateEquipment submits a new equipment item
func (c *ApiClient) CreateEquipment(equipment models.Equipment) (*models.Equipment, error) {
	var created models.Equipment
	if err := c.sendJSON(http.MethodPost, "/api/v1/equipment", equipment, &created); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	return &created, nil
}

// CreateMaintenanceRecord submits a new maintenance record
func (c *ApiClient) CreateMaintenanceRecord(record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	var created models.MaintenanceRecord
	if err := c.sendJSON(http.MethodPost, "/api/v1/maintenance-records", record, &created); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return &created, nil
}

// DeleteEquipment removes an equipment item by id
func (c *ApiClient) DeleteEquipment(id string) error {
	return c.delete("/api/v1/equipment/" + id)
}

// DeleteMaintenanceRecord removes a maintenance record by id
func (c *ApiClient) DeleteMaintenanceRecord(id string) error {
	return c.delete("/api/v1/maintenance-records/" + id)
}

func (c *ApiClient) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *ApiClient) sendJSON(method, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, msg)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *ApiClient) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Mock data used when the API server is unreachable

func mockEquipment() []models.Equipment {
	return []models.Equipment{
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
	}
}

func mockRecords() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		{
			ID:               "R1",
			EquipmentID:      "E1",
			Date:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Type:             models.MaintenancePreventive,
			Technician:       "Dana Reyes",
			HoursSpent:       3,
			Description:      "Quarterly hydraulic fluid change",
			PartsReplaced:    models.PartsList{"fluid filter"},
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
			PartsReplaced:    models.PartsList{"spindle bearing", "drive belt"},
			Priority:         models.PriorityLow,
			CompletionStatus: models.CompletionIncomplete,
		},
	}
}
