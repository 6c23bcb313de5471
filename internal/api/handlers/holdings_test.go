package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/handlers"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/testutil"
)

// TestHoldingHandler_Holdings tests the GET /api/holding endpoint.
//
// WHY: The holdings table is the app's main data entry surface. The frontend
// depends on this returning correct data with proper HTTP status codes and
// JSON formatting.
func TestHoldingHandler_Holdings(t *testing.T) {
	t.Run("returns 200 with empty array", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/holding", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Holdings(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		contentType := w.Header().Get("Content-Type")
		if contentType != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
		}

		var response []model.Holding
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("returns all holdings", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))
		testutil.NewHolding().WithSymbol("AAPL").Build(t, db)
		testutil.NewHolding().WithSymbol("VTI").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/holding", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Holdings(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Holding
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 {
			t.Errorf("Expected 2 holdings, got %d", len(response))
		}
	})
}

// TestHoldingHandler_GetHolding tests the GET /api/holding/{uuid} endpoint.
func TestHoldingHandler_GetHolding(t *testing.T) {
	t.Run("returns 200 with the holding", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))
		created := testutil.NewHolding().WithSymbol("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/holding/"+created.ID,
			map[string]string{"uuid": created.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.GetHolding(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Holding
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.ID != created.ID {
			t.Errorf("Expected ID %s, got %s", created.ID, response.ID)
		}
		if response.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %s", response.Symbol)
		}
	})

	t.Run("returns 404 for unknown holding", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))
		unknownID := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/holding/"+unknownID,
			map[string]string{"uuid": unknownID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.GetHolding(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestHoldingHandler_CreateHolding tests the POST /api/holding endpoint.
func TestHoldingHandler_CreateHolding(t *testing.T) {
	t.Run("creates holding with valid data", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		payload := map[string]interface{}{
			"symbol":        "vti",
			"name":          "Total Market ETF",
			"securityType":  "etf",
			"quantity":      12.5,
			"purchasePrice": 220.40,
			"purchaseDate":  "2025-06-01",
		}

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/holding", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.CreateHolding(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Holding
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Symbol != "VTI" {
			t.Errorf("Expected uppercased symbol 'VTI', got '%s'", response.Symbol)
		}
		if response.SecurityType != model.SecurityETF {
			t.Errorf("Expected security type 'etf', got '%s'", response.SecurityType)
		}
		if response.ID == "" {
			t.Error("Expected ID to be generated")
		}
	})

	t.Run("returns 400 when symbol is missing", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		payload := map[string]interface{}{
			"securityType":  "etf",
			"quantity":      12.5,
			"purchasePrice": 220.40,
			"purchaseDate":  "2025-06-01",
		}

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/holding", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.CreateHolding(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for unknown security type", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		payload := map[string]interface{}{
			"symbol":        "VTI",
			"securityType":  "commodity",
			"quantity":      12.5,
			"purchasePrice": 220.40,
			"purchaseDate":  "2025-06-01",
		}

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/holding", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.CreateHolding(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/holding", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.CreateHolding(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestHoldingHandler_DeleteHoldings tests the POST /api/holding/bulk-delete endpoint.
func TestHoldingHandler_DeleteHoldings(t *testing.T) {
	t.Run("deletes requested holdings and reports the count", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))
		h1 := testutil.NewHolding().Build(t, db)
		h2 := testutil.NewHolding().Build(t, db)

		payload := map[string]interface{}{"ids": []string{h1.ID, h2.ID}}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/holding/bulk-delete", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.DeleteHoldings(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.DeleteHoldingsResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Deleted != 2 {
			t.Errorf("Expected 2 deletions, got %d", response.Deleted)
		}
	})

	t.Run("returns 400 for an empty ID list", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		body, _ := json.Marshal(map[string]interface{}{"ids": []string{}})
		req := httptest.NewRequest(http.MethodPost, "/api/holding/bulk-delete", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.DeleteHoldings(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for a malformed UUID in the list", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewHoldingHandler(testutil.NewTestHoldingService(t, db))

		body, _ := json.Marshal(map[string]interface{}{"ids": []string{"not-a-uuid"}})
		req := httptest.NewRequest(http.MethodPost, "/api/holding/bulk-delete", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.DeleteHoldings(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
