package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/farm"
	"sudoku-engine/internal/generator"
)

func setupRouter(coord *farm.Coordinator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, coord)
	return r
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(farm.NewCoordinator(1))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", response["status"])
	}
}

func TestStatusHandler_ReportsBucketCounts(t *testing.T) {
	coord := farm.NewCoordinator(5)
	router := setupRouter(coord)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/status", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Done    bool           `json:"done"`
		Buckets map[string]int `json:"buckets"`
		Order   []string       `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Done {
		t.Error("fresh coordinator should not report done")
	}
	if len(response.Buckets) != len(generator.Bands) {
		t.Errorf("expected %d buckets, got %d", len(generator.Bands), len(response.Buckets))
	}
	for band, n := range response.Buckets {
		if n != 0 {
			t.Errorf("expected empty bucket %s, got %d", band, n)
		}
	}
	if len(response.Order) != len(generator.Bands) {
		t.Fatalf("expected %d bands in order, got %d", len(generator.Bands), len(response.Order))
	}
	for i, band := range generator.Bands {
		if response.Order[i] != string(band) {
			t.Errorf("order[%d] = %q, want %q", i, response.Order[i], band)
		}
	}
}
