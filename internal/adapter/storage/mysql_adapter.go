package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const (
	queryCustomerExists = `
		SELECT 1 FROM customer WHERE name = ? AND password = ? LIMIT 1`

	queryCustomerID = `
		SELECT id FROM customer WHERE name = ?`

	queryModels = `
		SELECT DISTINCT model FROM shoe`

	querySizesForModel = `
		SELECT DISTINCT si.sizeNr
		FROM shoe sh
		JOIN inventory inv ON sh.id = inv.shoeId
		JOIN size si ON inv.sizeId = si.id
		WHERE sh.model = ?`

	queryColorsForModelAndSize = `
		SELECT DISTINCT co.colorName
		FROM inventory inv
		JOIN shoe sh ON inv.shoeId = sh.id
		JOIN size si ON inv.sizeId = si.id
		JOIN color co ON inv.colorId = co.id
		WHERE sh.model = ? AND si.sizeNr = ? AND inv.quantity > 0`

	queryInventoryID = `
		SELECT inv.id
		FROM inventory inv
		JOIN shoe sh ON inv.shoeId = sh.id
		JOIN size si ON inv.sizeId = si.id
		JOIN color co ON inv.colorId = co.id
		WHERE sh.model = ? AND si.sizeNr = ? AND co.colorName = ?
		LIMIT 2`

	callAddToCart = `CALL AddToCart(?, ?, ?)`
)

type MySQLAdapter struct {
	db Querier
}

func NewMySQLAdapter(db Querier) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) CustomerExists(ctx context.Context, name, password string) (bool, error) {
	var one int
	err := m.db.QueryRowContext(ctx, queryCustomerExists, name, password).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query customer: %w", err)
	}
	return true, nil
}

func (m *MySQLAdapter) CustomerID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := m.db.QueryRowContext(ctx, queryCustomerID, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query customer id: %w", err)
	}
	return id, true, nil
}

func (m *MySQLAdapter) Models(ctx context.Context) ([]string, error) {
	return queryColumn[string](ctx, m.db, queryModels)
}

func (m *MySQLAdapter) SizesForModel(ctx context.Context, model string) ([]int, error) {
	return queryColumn[int](ctx, m.db, querySizesForModel, model)
}

func (m *MySQLAdapter) ColorsForModelAndSize(ctx context.Context, model string, size int) ([]string, error) {
	return queryColumn[string](ctx, m.db, queryColorsForModelAndSize, model, size)
}

// InventoryID fetches at most two rows so a duplicate triple is reported
// instead of one row being picked silently.
func (m *MySQLAdapter) InventoryID(ctx context.Context, sel domain.Selection) (int64, error) {
	ids, err := queryColumn[int64](ctx, m.db, queryInventoryID, sel.Model, sel.Size, sel.Color)
	if err != nil {
		return 0, fmt.Errorf("query inventory id: %w", err)
	}

	switch len(ids) {
	case 0:
		return 0, domain.ErrProductNotFound
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("%w: model=%q size=%d color=%q",
			domain.ErrInconsistentInventory, sel.Model, sel.Size, sel.Color)
	}
}

// AddToCart calls the AddToCart procedure once. The procedure owns order
// creation and line item insertion as one unit.
func (m *MySQLAdapter) AddToCart(ctx context.Context, customerID int64, target domain.OrderTarget, inventoryID int64) error {
	var orderID sql.NullInt64
	if !target.IsNew() {
		orderID = sql.NullInt64{Int64: *target.OrderID, Valid: true}
	}

	if _, err := m.db.ExecContext(ctx, callAddToCart, customerID, orderID, inventoryID); err != nil {
		return fmt.Errorf("call AddToCart: %w", err)
	}
	return nil
}

func queryColumn[T any](ctx context.Context, db Querier, query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	values := []T{}
	for rows.Next() {
		var v T
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return values, nil
}
