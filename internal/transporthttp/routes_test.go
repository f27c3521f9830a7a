package transporthttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-core/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{})
	return r
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", response["status"])
	}
	if response["version"] == nil {
		t.Error("expected a version in the response")
	}
}

func TestGenerateByCategoryHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/puzzle/basic", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	puzzle, _ := response["puzzle"].(string)
	if len(puzzle) != 81 {
		t.Errorf("expected an 81-character puzzle, got %q", puzzle)
	}
}

func TestGenerateWithSeedHandler_Reproducible(t *testing.T) {
	router := setupRouter()

	get := func() string {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/puzzle/trivial/seed/99", nil)
		router.ServeHTTP(w, req)
		var response map[string]any
		json.Unmarshal(w.Body.Bytes(), &response)
		puzzle, _ := response["puzzle"].(string)
		return puzzle
	}
	if a, b := get(), get(); a != b {
		t.Errorf("same seed produced different puzzles:\n%s\n%s", a, b)
	}
}

func TestGenerateWithSeedHandler_InvalidSeed(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/puzzle/basic/seed/not-a-number", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a non-numeric seed, got %d", w.Code)
	}
}

func TestEvaluateHandler(t *testing.T) {
	router := setupRouter()

	hardest := "800000000003600000070090200050007000000045700000100030001000068008500010090000400"
	body, _ := json.Marshal(map[string]string{"puzzle": hardest})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	score, ok := response["score"].(float64)
	if !ok || score < 1 || score > 100 {
		t.Errorf("expected a score in [1, 100], got %v", response["score"])
	}
}

func TestEvaluateHandler_RejectsWrongLength(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(map[string]string{"puzzle": "53..7...."})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a short puzzle string, got %d", w.Code)
	}
}
