package database

import (
	"context"
	"fmt"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
)

type seedStock struct {
	model    string
	size     int
	color    string
	quantity int
}

var (
	demoCustomers = []domain.Customer{
		{Name: "anna", Password: "anna123"},
		{Name: "bertil", Password: "bertil123"},
		{Name: "cecilia", Password: "cecilia123"},
	}

	demoShoes  = []domain.Shoe{{Model: "Runner"}, {Model: "Trail"}, {Model: "Classic"}}
	demoSizes  = []domain.Size{{SizeNr: 38}, {SizeNr: 40}, {SizeNr: 42}, {SizeNr: 44}}
	demoColors = []domain.Color{{Name: "Black"}, {Name: "White"}, {Name: "Red"}}

	demoStock = []seedStock{
		{"Runner", 42, "Black", 5},
		{"Runner", 42, "White", 0},
		{"Runner", 44, "Black", 2},
		{"Trail", 40, "Red", 3},
		{"Trail", 42, "Black", 1},
		{"Classic", 38, "White", 4},
	}
)

// SeedDemoData inserts a small catalog and a few customers in one
// transaction. Rows that already exist are left untouched.
func (db *DB) SeedDemoData(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, c := range demoCustomers {
		if _, err := tx.ExecContext(ctx,
			`INSERT IGNORE INTO customer (name, password) VALUES (?, ?)`, c.Name, c.Password); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.Name, err)
		}
	}
	for _, s := range demoShoes {
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO shoe (model) VALUES (?)`, s.Model); err != nil {
			return fmt.Errorf("insert shoe %s: %w", s.Model, err)
		}
	}
	for _, s := range demoSizes {
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO size (sizeNr) VALUES (?)`, s.SizeNr); err != nil {
			return fmt.Errorf("insert size %d: %w", s.SizeNr, err)
		}
	}
	for _, c := range demoColors {
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO color (colorName) VALUES (?)`, c.Name); err != nil {
			return fmt.Errorf("insert color %s: %w", c.Name, err)
		}
	}

	for _, s := range demoStock {
		_, err := tx.ExecContext(ctx, `
			INSERT IGNORE INTO inventory (shoeId, sizeId, colorId, quantity)
			SELECT sh.id, si.id, co.id, ?
			FROM shoe sh, size si, color co
			WHERE sh.model = ? AND si.sizeNr = ? AND co.colorName = ?`,
			s.quantity, s.model, s.size, s.color,
		)
		if err != nil {
			return fmt.Errorf("insert inventory %s/%d/%s: %w", s.model, s.size, s.color, err)
		}
	}

	return tx.Commit()
}
