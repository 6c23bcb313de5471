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

func validProfilePayload() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Alex",
		"age":             35,
		"experienceLevel": "intermediate",
		"riskTolerance":   "moderate",
		"timeHorizon":     "long_term",
		"monthlyIncome":   6000.0,
		"monthlyExpenses": 4000.0,
		"monthlySavings":  1200.0,
		"emergencyFund":   24000.0,
		"currentDebt":     0.0,
	}
}

// TestProfileHandler_GetProfile tests the GET /api/profile endpoint.
//
// WHY: The frontend gates the advisory screens on this endpoint; the 404
// before onboarding is what routes new users into the questionnaire.
func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("returns 404 before onboarding", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProfileHandler(testutil.NewTestProfileService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.GetProfile(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestProfileHandler_SaveProfile tests the PUT /api/profile endpoint.
func TestProfileHandler_SaveProfile(t *testing.T) {
	t.Run("saves and returns the profile", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProfileHandler(testutil.NewTestProfileService(t, db))

		body, _ := json.Marshal(validProfilePayload())
		req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.SaveProfile(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.UserProfile
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Name != "Alex" {
			t.Errorf("Expected name 'Alex', got '%s'", response.Name)
		}
		if response.RiskTolerance != model.RiskModerate {
			t.Errorf("Expected risk tolerance 'moderate', got '%s'", response.RiskTolerance)
		}
		if response.UpdatedAt.IsZero() {
			t.Error("Expected UpdatedAt to be set")
		}

		// The saved profile is now retrievable
		getReq := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		getW := httptest.NewRecorder()
		handler.GetProfile(getW, getReq)
		if getW.Code != http.StatusOK {
			t.Errorf("Expected status 200 after save, got %d", getW.Code)
		}
	})

	t.Run("returns 400 when age is below the minimum", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProfileHandler(testutil.NewTestProfileService(t, db))

		payload := validProfilePayload()
		payload["age"] = 15

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.SaveProfile(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for unknown risk tolerance", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewProfileHandler(testutil.NewTestProfileService(t, db))

		payload := validProfilePayload()
		payload["riskTolerance"] = "yolo"

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Execute
		handler.SaveProfile(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
