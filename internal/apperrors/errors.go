package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrProfileNotFound indicates that no user profile has been created yet.
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrRecommendationNotFound indicates that a recommendation with the given ID does not exist.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveProfile         = errors.New("failed to retrieve profile")
	ErrFailedToRetrieveHoldings        = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveGoals           = errors.New("failed to retrieve goals")
	ErrFailedToRetrieveRecommendations = errors.New("failed to retrieve recommendations")
	ErrFailedToGenerateRecommendations = errors.New("failed to generate recommendations")
	ErrFailedToGetAnalysis             = errors.New("failed to get portfolio analysis")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDecryptProfile indicates that the stored profile payload could not
	// be decrypted, usually because the key file changed.
	ErrDecryptProfile = errors.New("failed to decrypt profile payload")
)
