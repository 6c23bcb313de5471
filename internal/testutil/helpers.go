package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/secrets"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
)

// NewTestKeychain creates an in-memory encryption key for tests.
func NewTestKeychain(t *testing.T) *secrets.Keychain {
	t.Helper()

	keychain, err := secrets.NewKeychain()
	if err != nil {
		t.Fatalf("Failed to create test keychain: %v", err)
	}
	return keychain
}

// NewTestProfileRepository creates a ProfileRepository backed by a throwaway
// encryption key.
func NewTestProfileRepository(t *testing.T, db *sql.DB) *repository.ProfileRepository {
	t.Helper()

	return repository.NewProfileRepository(db, NewTestKeychain(t))
}

func NewTestProfileService(t *testing.T, db *sql.DB) *service.ProfileService {
	t.Helper()

	return service.NewProfileService(NewTestProfileRepository(t, db))
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(repository.NewHoldingRepository(db))
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	return service.NewGoalService(repository.NewGoalRepository(db))
}

func NewTestAdvisorService(t *testing.T, db *sql.DB) *service.AdvisorService {
	t.Helper()

	return service.NewAdvisorService(
		NewTestProfileRepository(t, db),
		repository.NewHoldingRepository(db),
		repository.NewGoalRepository(db),
		repository.NewRecommendationRepository(db),
	)
}

// NewTestAdvisorServiceWithProfileRepo creates an AdvisorService sharing the
// given profile repository, so the test and the service see the same key.
func NewTestAdvisorServiceWithProfileRepo(t *testing.T, db *sql.DB, profileRepo *repository.ProfileRepository) *service.AdvisorService {
	t.Helper()

	return service.NewAdvisorService(
		profileRepo,
		repository.NewHoldingRepository(db),
		repository.NewGoalRepository(db),
		repository.NewRecommendationRepository(db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a stock ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("AAPL")
//	// Returns: "AAPL1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
