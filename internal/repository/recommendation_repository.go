package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// RecommendationRepository persists the latest generated recommendation
// snapshot. The engine never reads this data back; it exists so the UI can
// show recommendations between refreshes and track status mutations.
type RecommendationRepository struct {
	db *sql.DB
}

// NewRecommendationRepository creates a new RecommendationRepository with the provided database connection.
func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// GetRecommendations retrieves all stored recommendations with their action
// items, ordered by priority weight descending then creation time descending.
func (r *RecommendationRepository) GetRecommendations() ([]model.Recommendation, error) {
	query := `
		SELECT id, type, priority, title, description, reasoning,
		       risk_reduction, return_improvement, goal_acceleration,
		       difficulty, status, created_at, updated_at
		FROM recommendation
		ORDER BY
			CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC,
			created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation table: %w", err)
	}
	defer rows.Close()

	recommendations := []model.Recommendation{}

	for rows.Next() {
		var rec model.Recommendation
		var recType, priority, difficulty, status string

		err := rows.Scan(
			&rec.ID,
			&recType,
			&priority,
			&rec.Title,
			&rec.Description,
			&rec.Reasoning,
			&rec.ExpectedImpact.RiskReduction,
			&rec.ExpectedImpact.ReturnImprovement,
			&rec.ExpectedImpact.GoalAcceleration,
			&difficulty,
			&status,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation table results: %w", err)
		}

		rec.Type = model.RecommendationType(recType)
		rec.Priority = model.RecommendationPriority(priority)
		rec.Difficulty = model.ImplementationDifficulty(difficulty)
		rec.Status = model.RecommendationStatus(status)

		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendation table: %w", err)
	}

	if err := r.attachActionItems(recommendations); err != nil {
		return nil, err
	}

	return recommendations, nil
}

// ReplaceSnapshot deletes every recommendation still in pending state and
// inserts the freshly generated set, in one transaction. Rows whose status
// the user mutated (in_progress/completed/dismissed) survive the replace;
// the engine mints new ids each run, so no diffing is attempted.
func (r *RecommendationRepository) ReplaceSnapshot(recommendations []model.Recommendation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM recommendation WHERE status = ?`, string(model.StatusPending)); err != nil {
		return fmt.Errorf("failed to clear pending recommendations: %w", err)
	}

	recQuery := `
		INSERT INTO recommendation (id, type, priority, title, description, reasoning,
		                            risk_reduction, return_improvement, goal_acceleration,
		                            difficulty, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	itemQuery := `
		INSERT INTO recommendation_action_item (id, recommendation_id, description, completed, position)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, rec := range recommendations {
		_, err := tx.Exec(recQuery,
			rec.ID, string(rec.Type), string(rec.Priority), rec.Title, rec.Description, rec.Reasoning,
			rec.ExpectedImpact.RiskReduction, rec.ExpectedImpact.ReturnImprovement, rec.ExpectedImpact.GoalAcceleration,
			string(rec.Difficulty), string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}

		for i, item := range rec.ActionItems {
			if _, err := tx.Exec(itemQuery, item.ID, rec.ID, item.Description, item.Completed, i); err != nil {
				return fmt.Errorf("failed to insert recommendation action item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

// UpdateStatus mutates a recommendation's status (dismiss, mark implemented).
func (r *RecommendationRepository) UpdateStatus(recommendationID string, status model.RecommendationStatus, now time.Time) error {
	result, err := r.db.Exec(
		`UPDATE recommendation SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), now, recommendationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recommendation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrRecommendationNotFound
	}

	return nil
}

// attachActionItems loads action items for the given recommendations and
// attaches them in stored position order.
func (r *RecommendationRepository) attachActionItems(recommendations []model.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	query := `
		SELECT id, recommendation_id, description, completed
		FROM recommendation_action_item
		ORDER BY recommendation_id, position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return fmt.Errorf("failed to query recommendation_action_item table: %w", err)
	}
	defer rows.Close()

	itemsByRec := make(map[string][]model.ActionItem)
	for rows.Next() {
		var item model.ActionItem
		var recID string

		if err := rows.Scan(&item.ID, &recID, &item.Description, &item.Completed); err != nil {
			return fmt.Errorf("failed to scan recommendation_action_item table results: %w", err)
		}
		itemsByRec[recID] = append(itemsByRec[recID], item)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating recommendation_action_item table: %w", err)
	}

	for i := range recommendations {
		items, ok := itemsByRec[recommendations[i].ID]
		if !ok {
			items = []model.ActionItem{}
		}
		recommendations[i].ActionItems = items
	}

	return nil
}
