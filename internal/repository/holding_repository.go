package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/apperrors"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

const holdingColumns = `id, symbol, name, security_type, quantity, purchase_price, purchase_date, current_price, last_updated`

// GetHoldings retrieves all holdings ordered by symbol.
// Returns an empty slice when no holdings exist.
func (r *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM holding
		ORDER BY symbol
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its ID.
func (r *HoldingRepository) GetHoldingOnID(holdingID string) (model.Holding, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM holding
		WHERE id = ?
	`

	row := r.db.QueryRow(query, holdingID)
	h, err := scanHolding(row)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// CreateHolding inserts a new holding.
func (r *HoldingRepository) CreateHolding(h model.Holding) error {
	query := `
		INSERT INTO holding (id, symbol, name, security_type, quantity, purchase_price, purchase_date, current_price, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var name any
	if h.Name != "" {
		name = h.Name
	}
	var currentPrice any
	if h.CurrentPrice != nil {
		currentPrice = *h.CurrentPrice
	}

	_, err := r.db.Exec(query,
		h.ID, h.Symbol, name, string(h.SecurityType),
		h.Quantity, h.PurchasePrice, h.PurchaseDate.Format("2006-01-02"),
		currentPrice, h.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding replaces all mutable fields of an existing holding.
func (r *HoldingRepository) UpdateHolding(h model.Holding) error {
	query := `
		UPDATE holding
		SET symbol = ?, name = ?, security_type = ?, quantity = ?,
		    purchase_price = ?, purchase_date = ?, current_price = ?, last_updated = ?
		WHERE id = ?
	`

	var name any
	if h.Name != "" {
		name = h.Name
	}
	var currentPrice any
	if h.CurrentPrice != nil {
		currentPrice = *h.CurrentPrice
	}

	result, err := r.db.Exec(query,
		h.Symbol, name, string(h.SecurityType), h.Quantity,
		h.PurchasePrice, h.PurchaseDate.Format("2006-01-02"), currentPrice, h.LastUpdated,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHolding removes a single holding by ID.
func (r *HoldingRepository) DeleteHolding(holdingID string) error {
	result, err := r.db.Exec(`DELETE FROM holding WHERE id = ?`, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHoldings removes multiple holdings in a single statement.
// Unknown IDs are ignored; the count of deleted rows is returned.
func (r *HoldingRepository) DeleteHoldings(holdingIDs []string) (int64, error) {
	if len(holdingIDs) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(holdingIDs))
	args := make([]any, len(holdingIDs))
	for i, id := range holdingIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `DELETE FROM holding WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete holdings: %w", err)
	}

	return result.RowsAffected()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolding(row rowScanner) (model.Holding, error) {
	var h model.Holding
	var name sql.NullString
	var securityType string
	var purchaseDate string
	var currentPrice sql.NullFloat64

	err := row.Scan(
		&h.ID,
		&h.Symbol,
		&name,
		&securityType,
		&h.Quantity,
		&h.PurchasePrice,
		&purchaseDate,
		&currentPrice,
		&h.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, err
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to scan holding table results: %w", err)
	}

	h.Name = name.String
	h.SecurityType = model.SecurityType(securityType)
	if currentPrice.Valid {
		price := currentPrice.Float64
		h.CurrentPrice = &price
	}
	if h.PurchaseDate, err = parseDate(purchaseDate); err != nil {
		return model.Holding{}, err
	}

	return h, nil
}
