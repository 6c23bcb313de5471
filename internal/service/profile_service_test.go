package service_test

import (
	"errors"
	"testing"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/testutil"
)

// TestProfileService_GetProfile tests profile retrieval.
//
// WHY: The profile gates every advisor endpoint, and it round-trips through
// encryption. A silent decrypt or unmarshal fault here would break the whole
// app, so the round trip is covered explicitly.
func TestProfileService_GetProfile(t *testing.T) {
	t.Run("returns not found before onboarding", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		// Execute
		_, err := svc.GetProfile()

		// Assert
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			t.Errorf("Expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("round-trips a saved profile through encryption", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		saved, err := svc.SaveProfile(request.SaveProfileRequest{
			Name:            "Jordan",
			Age:             42,
			ExperienceLevel: "advanced",
			RiskTolerance:   "aggressive",
			TimeHorizon:     "long_term",
			MonthlyIncome:   8000,
			MonthlyExpenses: 5000,
			MonthlySavings:  2000,
			EmergencyFund:   30000,
			CurrentDebt:     10000,
		})
		if err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		// Execute
		got, err := svc.GetProfile()

		// Assert
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if got.Name != "Jordan" || got.Age != 42 {
			t.Errorf("Expected Jordan/42, got %s/%d", got.Name, got.Age)
		}
		if got.RiskTolerance != saved.RiskTolerance {
			t.Errorf("Expected risk tolerance %s, got %s", saved.RiskTolerance, got.RiskTolerance)
		}
		if got.MonthlyIncome != 8000 || got.CurrentDebt != 10000 {
			t.Errorf("Monetary fields did not survive the round trip: %+v", got)
		}

		// The stored payload must not be readable plaintext.
		var payload string
		if err := db.QueryRow("SELECT payload FROM user_profile").Scan(&payload); err != nil {
			t.Fatalf("Failed to read stored payload: %v", err)
		}
		if payload == "" || payload[0] == '{' {
			t.Error("Expected the stored payload to be encrypted, found JSON plaintext")
		}
	})

	t.Run("saving twice replaces the single record", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		base := request.SaveProfileRequest{
			Name:            "First",
			Age:             30,
			ExperienceLevel: "beginner",
			RiskTolerance:   "moderate",
			TimeHorizon:     "medium_term",
		}
		if _, err := svc.SaveProfile(base); err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}
		base.Name = "Second"
		base.Age = 31

		// Execute
		if _, err := svc.SaveProfile(base); err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		// Assert
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM user_profile").Scan(&count); err != nil {
			t.Fatalf("Failed to count profile rows: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected a single profile row, got %d", count)
		}

		got, err := svc.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if got.Name != "Second" || got.Age != 31 {
			t.Errorf("Expected the replacement profile, got %s/%d", got.Name, got.Age)
		}
	})
}
