package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/secrets"
)

// profileRowID is the fixed primary key of the single profile row.
// Exactly one profile is authoritative at a time.
const profileRowID = "profile"

// ProfileRepository provides data access for the single user profile record.
// The profile payload is stored as an encrypted JSON blob because it carries
// income, debt and savings figures.
type ProfileRepository struct {
	db       *sql.DB
	keychain *secrets.Keychain
}

// NewProfileRepository creates a new ProfileRepository with the provided
// database connection and encryption keychain.
func NewProfileRepository(db *sql.DB, keychain *secrets.Keychain) *ProfileRepository {
	return &ProfileRepository{db: db, keychain: keychain}
}

// GetProfile retrieves and decrypts the profile record.
// Returns apperrors.ErrProfileNotFound before onboarding has completed.
func (r *ProfileRepository) GetProfile() (model.UserProfile, error) {
	query := `
		SELECT payload, updated_at
		FROM user_profile
		WHERE id = ?
	`

	var payload string
	var updatedAt time.Time

	err := r.db.QueryRow(query, profileRowID).Scan(&payload, &updatedAt)
	if err == sql.ErrNoRows {
		return model.UserProfile{}, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to query user_profile table: %w", err)
	}

	plaintext, err := r.keychain.Decrypt(payload)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %v", apperrors.ErrDecryptProfile, err)
	}

	var profile model.UserProfile
	if err := json.Unmarshal(plaintext, &profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to unmarshal profile payload: %w", err)
	}
	profile.UpdatedAt = updatedAt

	return profile, nil
}

// SaveProfile encrypts and upserts the profile record.
func (r *ProfileRepository) SaveProfile(profile model.UserProfile) error {
	plaintext, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile payload: %w", err)
	}

	payload, err := r.keychain.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt profile payload: %w", err)
	}

	query := `
		INSERT INTO user_profile (id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, profileRowID, payload, profile.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert user_profile table: %w", err)
	}

	return nil
}
