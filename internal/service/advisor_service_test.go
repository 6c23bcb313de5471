package service_test

import (
	"errors"
	"testing"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/engine"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/testutil"
)

// TestAdvisorService_RequiresProfile tests that advisory endpoints refuse to
// run before onboarding.
//
// WHY: Every advisory calculation keys off profile fields like age and risk
// tolerance; running against a zero profile would produce confident nonsense.
func TestAdvisorService_RequiresProfile(t *testing.T) {
	// Setup
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestAdvisorService(t, db)
	testutil.NewHolding().Build(t, db)

	// Execute + Assert
	if _, err := svc.GetPortfolioAnalysis(); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("GetPortfolioAnalysis: expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.GetFinancialHealth(); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("GetFinancialHealth: expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.GetTargetAllocation(); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("GetTargetAllocation: expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.RefreshRecommendations(); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("RefreshRecommendations: expected ErrProfileNotFound, got %v", err)
	}
}

// TestAdvisorService_GetPortfolioAnalysis tests the analysis pipeline against
// seeded data.
//
// WHY: This is the dashboard's single data source; totals and allocation
// slices must reflect what the repositories actually hold.
func TestAdvisorService_GetPortfolioAnalysis(t *testing.T) {
	// Setup
	db := testutil.SetupTestDB(t)
	profileRepo := testutil.NewTestProfileRepository(t, db)
	testutil.NewProfile().Build(t, profileRepo)
	svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)

	testutil.NewHolding().WithSymbol("VTI").WithSecurityType(model.SecurityStock).
		WithQuantity(10).WithPurchasePrice(100).WithCurrentPrice(150).Build(t, db)
	testutil.NewHolding().WithSymbol("BND").WithSecurityType(model.SecurityBond).
		WithQuantity(10).WithPurchasePrice(100).WithCurrentPrice(50).Build(t, db)

	// Execute
	analysis, err := svc.GetPortfolioAnalysis()

	// Assert
	if err != nil {
		t.Fatalf("GetPortfolioAnalysis() returned unexpected error: %v", err)
	}
	if analysis.Summary.TotalValue != 2000 {
		t.Errorf("Expected total value 2000, got %v", analysis.Summary.TotalValue)
	}
	if analysis.Summary.TotalCostBasis != 2000 {
		t.Errorf("Expected cost basis 2000, got %v", analysis.Summary.TotalCostBasis)
	}
	if analysis.Summary.HoldingCount != 2 {
		t.Errorf("Expected 2 holdings, got %d", analysis.Summary.HoldingCount)
	}
	if len(analysis.Allocations) != 2 {
		t.Fatalf("Expected 2 allocation slices, got %d", len(analysis.Allocations))
	}
	if len(analysis.TopPerformers) == 0 || analysis.TopPerformers[0].Holding.Symbol != "VTI" {
		t.Errorf("Expected VTI as top performer, got %+v", analysis.TopPerformers)
	}
	if len(analysis.WorstPerformers) == 0 || analysis.WorstPerformers[0].Holding.Symbol != "BND" {
		t.Errorf("Expected BND as worst performer, got %+v", analysis.WorstPerformers)
	}
}

// TestAdvisorService_GetFinancialHealth tests health scoring through the
// service layer.
//
// WHY: The service decrypts the profile before scoring; a wiring mistake
// between repository and engine would surface here, not in the engine tests.
func TestAdvisorService_GetFinancialHealth(t *testing.T) {
	// Setup
	db := testutil.SetupTestDB(t)
	profileRepo := testutil.NewTestProfileRepository(t, db)
	testutil.NewProfile().Build(t, profileRepo)
	svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)

	// Execute
	health, err := svc.GetFinancialHealth()

	// Assert
	if err != nil {
		t.Fatalf("GetFinancialHealth() returned unexpected error: %v", err)
	}
	if health.TotalScore <= 0 || health.TotalScore > 100 {
		t.Errorf("Expected score in (0, 100], got %d", health.TotalScore)
	}
	if len(health.Components) != 4 {
		t.Errorf("Expected 4 components, got %d", len(health.Components))
	}
}

// TestAdvisorService_GetTargetAllocation tests the profile-driven target.
func TestAdvisorService_GetTargetAllocation(t *testing.T) {
	// Setup
	db := testutil.SetupTestDB(t)
	profileRepo := testutil.NewTestProfileRepository(t, db)
	testutil.NewProfile().WithAge(35).WithRiskTolerance(model.RiskModerate).
		WithTimeHorizon(model.HorizonLongTerm).Build(t, profileRepo)
	svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)

	// Execute
	allocation, err := svc.GetTargetAllocation()

	// Assert
	if err != nil {
		t.Fatalf("GetTargetAllocation() returned unexpected error: %v", err)
	}
	if allocation.StockPercent != 75 {
		t.Errorf("Expected 75%% stock for a 35 year old moderate long-term investor, got %v", allocation.StockPercent)
	}
	if allocation.StockPercent+allocation.BondPercent != 100 {
		t.Errorf("Expected split to sum to 100, got %v + %v", allocation.StockPercent, allocation.BondPercent)
	}
}

// TestAdvisorService_RefreshRecommendations tests the generate-and-persist
// cycle.
//
// WHY: Refresh replaces the pending snapshot but must never clobber
// recommendations the user already acted on. Losing a completed row would
// erase the user's progress tracking.
func TestAdvisorService_RefreshRecommendations(t *testing.T) {
	t.Run("persists at most the capped number of recommendations", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		profileRepo := testutil.NewTestProfileRepository(t, db)
		testutil.NewProfile().Build(t, profileRepo)
		svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)

		// A concentrated single-stock portfolio generates plenty of drafts.
		testutil.NewHolding().WithSymbol("TSLA").WithSecurityType(model.SecurityStock).
			WithQuantity(100).WithPurchasePrice(200).Build(t, db)

		// Execute
		recommendations, err := svc.RefreshRecommendations()

		// Assert
		if err != nil {
			t.Fatalf("RefreshRecommendations() returned unexpected error: %v", err)
		}
		if len(recommendations) == 0 {
			t.Fatal("Expected recommendations for a single-stock portfolio")
		}
		if len(recommendations) > engine.MaxRecommendations {
			t.Errorf("Expected at most %d recommendations, got %d", engine.MaxRecommendations, len(recommendations))
		}
		for _, rec := range recommendations {
			if rec.Status != model.StatusPending {
				t.Errorf("Recommendation %q: expected pending status, got %s", rec.Title, rec.Status)
			}
			if rec.ID == "" {
				t.Errorf("Recommendation %q: expected a generated ID", rec.Title)
			}
		}

		stored, err := svc.GetRecommendations()
		if err != nil {
			t.Fatalf("GetRecommendations() returned unexpected error: %v", err)
		}
		if len(stored) != len(recommendations) {
			t.Errorf("Expected %d stored recommendations, got %d", len(recommendations), len(stored))
		}
	})

	t.Run("preserves acted-on recommendations across a refresh", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		profileRepo := testutil.NewTestProfileRepository(t, db)
		testutil.NewProfile().Build(t, profileRepo)
		svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)
		testutil.NewHolding().WithSymbol("TSLA").WithSecurityType(model.SecurityStock).
			WithQuantity(100).WithPurchasePrice(200).Build(t, db)

		first, err := svc.RefreshRecommendations()
		if err != nil {
			t.Fatalf("First refresh returned unexpected error: %v", err)
		}
		completed := first[0]
		if err := svc.UpdateRecommendationStatus(completed.ID, model.StatusCompleted); err != nil {
			t.Fatalf("UpdateRecommendationStatus() returned unexpected error: %v", err)
		}

		// Execute
		if _, err := svc.RefreshRecommendations(); err != nil {
			t.Fatalf("Second refresh returned unexpected error: %v", err)
		}

		// Assert
		stored, err := svc.GetRecommendations()
		if err != nil {
			t.Fatalf("GetRecommendations() returned unexpected error: %v", err)
		}
		var survived bool
		for _, rec := range stored {
			if rec.ID == completed.ID {
				survived = true
				if rec.Status != model.StatusCompleted {
					t.Errorf("Expected completed status to survive, got %s", rec.Status)
				}
			} else if rec.Status != model.StatusPending {
				t.Errorf("Recommendation %q: expected fresh pending row, got %s", rec.Title, rec.Status)
			}
		}
		if !survived {
			t.Error("Completed recommendation was removed by the refresh")
		}
	})

	t.Run("replaces stale pending recommendations", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		profileRepo := testutil.NewTestProfileRepository(t, db)
		testutil.NewProfile().Build(t, profileRepo)
		svc := testutil.NewTestAdvisorServiceWithProfileRepo(t, db, profileRepo)
		testutil.NewHolding().WithSymbol("TSLA").WithSecurityType(model.SecurityStock).
			WithQuantity(100).WithPurchasePrice(200).Build(t, db)

		first, err := svc.RefreshRecommendations()
		if err != nil {
			t.Fatalf("First refresh returned unexpected error: %v", err)
		}

		// Execute
		second, err := svc.RefreshRecommendations()

		// Assert
		if err != nil {
			t.Fatalf("Second refresh returned unexpected error: %v", err)
		}
		if len(second) != len(first) {
			t.Errorf("Expected same count after refresh on unchanged data, got %d then %d", len(first), len(second))
		}
		firstIDs := make(map[string]bool, len(first))
		for _, rec := range first {
			firstIDs[rec.ID] = true
		}
		for _, rec := range second {
			if firstIDs[rec.ID] {
				t.Errorf("Recommendation %q kept a stale ID across refresh", rec.Title)
			}
		}
	})
}

// TestAdvisorService_UpdateRecommendationStatus tests status mutation.
func TestAdvisorService_UpdateRecommendationStatus(t *testing.T) {
	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAdvisorService(t, db)

		// Execute + Assert
		err := svc.UpdateRecommendationStatus(testutil.MakeID(), model.StatusDismissed)
		if !errors.Is(err, apperrors.ErrRecommendationNotFound) {
			t.Errorf("Expected ErrRecommendationNotFound, got %v", err)
		}
	})
}
