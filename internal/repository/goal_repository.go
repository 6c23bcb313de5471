package repository

import (
	"database/sql"
	"fmt"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

const goalColumns = `id, name, category, target_amount, current_amount, target_date, priority, monthly_contribution, created_at`

// GetGoals retrieves all goals ordered by target date.
// Returns an empty slice when no goals exist.
func (r *GoalRepository) GetGoals() ([]model.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goal
		ORDER BY target_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// GetGoalOnID retrieves a single goal by its ID.
func (r *GoalRepository) GetGoalOnID(goalID string) (model.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goal
		WHERE id = ?
	`

	g, err := scanGoal(r.db.QueryRow(query, goalID))
	if err == sql.ErrNoRows {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, err
	}

	return g, nil
}

// CreateGoal inserts a new goal.
func (r *GoalRepository) CreateGoal(g model.Goal) error {
	query := `
		INSERT INTO goal (id, name, category, target_amount, current_amount, target_date, priority, monthly_contribution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		g.ID, g.Name, string(g.Category), g.TargetAmount, g.CurrentAmount,
		g.TargetDate.Format("2006-01-02"), string(g.Priority), g.MonthlyContribution, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// UpdateGoal replaces all mutable fields of an existing goal.
func (r *GoalRepository) UpdateGoal(g model.Goal) error {
	query := `
		UPDATE goal
		SET name = ?, category = ?, target_amount = ?, current_amount = ?,
		    target_date = ?, priority = ?, monthly_contribution = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		g.Name, string(g.Category), g.TargetAmount, g.CurrentAmount,
		g.TargetDate.Format("2006-01-02"), string(g.Priority), g.MonthlyContribution,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a goal by ID.
func (r *GoalRepository) DeleteGoal(goalID string) error {
	result, err := r.db.Exec(`DELETE FROM goal WHERE id = ?`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

func scanGoal(row rowScanner) (model.Goal, error) {
	var g model.Goal
	var category, priority, targetDate string

	err := row.Scan(
		&g.ID,
		&g.Name,
		&category,
		&g.TargetAmount,
		&g.CurrentAmount,
		&targetDate,
		&priority,
		&g.MonthlyContribution,
		&g.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Goal{}, err
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to scan goal table results: %w", err)
	}

	g.Category = model.GoalCategory(category)
	g.Priority = model.GoalPriority(priority)
	if g.TargetDate, err = parseDate(targetDate); err != nil {
		return model.Goal{}, err
	}

	return g, nil
}
