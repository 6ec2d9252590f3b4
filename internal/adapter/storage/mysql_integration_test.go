package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/database"
)

func getMySQLDB(t *testing.T) *database.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/WebShop?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("MySQL not available: %v", err)
	}

	return &database.DB{DB: db}
}

func TestIntegration_AddToCartFlow(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SetupSchema(ctx))
	require.NoError(t, db.SeedDemoData(ctx))

	conn, err := db.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	adapter := NewMySQLAdapter(conn)

	ok, err := adapter.CustomerExists(ctx, "anna", "anna123")
	require.NoError(t, err)
	require.True(t, ok)

	customerID, ok, err := adapter.CustomerID(ctx, "anna")
	require.NoError(t, err)
	require.True(t, ok)

	models, err := adapter.Models(ctx)
	require.NoError(t, err)
	require.Contains(t, models, "Runner")

	sizes, err := adapter.SizesForModel(ctx, "Runner")
	require.NoError(t, err)
	require.Contains(t, sizes, 42)

	colors, err := adapter.ColorsForModelAndSize(ctx, "Runner", 42)
	require.NoError(t, err)
	require.NotContains(t, colors, "White", "out of stock colors are not offered")

	sel := domain.Selection{Model: "Runner", Size: 42, Color: "Black"}
	inventoryID, err := adapter.InventoryID(ctx, sel)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, `UPDATE inventory SET quantity = 5 WHERE id = ?`, inventoryID)
	require.NoError(t, err)

	var before int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE customerId = ?`, customerID).Scan(&before))

	require.NoError(t, adapter.AddToCart(ctx, customerID, domain.NewOrderTarget(), inventoryID))

	var after int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE customerId = ?`, customerID).Scan(&after))
	require.Equal(t, before+1, after)

	var orderID int64
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT MAX(id) FROM orders WHERE customerId = ?`, customerID).Scan(&orderID))

	// Appending must not create another order
	require.NoError(t, adapter.AddToCart(ctx, customerID, domain.ExistingOrder(orderID), inventoryID))
	var afterAppend int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE customerId = ?`, customerID).Scan(&afterAppend))
	require.Equal(t, after, afterAppend)
}

func TestIntegration_ProductNotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SetupSchema(ctx))

	adapter := NewMySQLAdapter(db)
	_, err := adapter.InventoryID(ctx, domain.Selection{Model: "NoSuchShoe", Size: 1, Color: "Plaid"})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
