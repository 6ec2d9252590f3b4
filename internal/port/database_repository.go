package port

import (
	"context"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
)

type CustomerRepository interface {
	// CustomerExists reports whether a customer matches both name and password exactly
	CustomerExists(ctx context.Context, name, password string) (bool, error)

	// CustomerID resolves a name to its id, ok is false when no row matches
	CustomerID(ctx context.Context, name string) (id int64, ok bool, err error)
}

type CatalogRepository interface {
	// Models lists the distinct shoe models
	Models(ctx context.Context) ([]string, error)

	// SizesForModel lists distinct size numbers stocked for a model, any quantity
	SizesForModel(ctx context.Context, model string) ([]int, error)

	// ColorsForModelAndSize lists distinct color names with quantity > 0
	ColorsForModelAndSize(ctx context.Context, model string, size int) ([]string, error)
}

type OrderRepository interface {
	// InventoryID resolves a selection to its unique inventory row.
	// Returns domain.ErrProductNotFound or domain.ErrInconsistentInventory.
	InventoryID(ctx context.Context, sel domain.Selection) (int64, error)

	// AddToCart appends the item to the target order, or creates one when the target is new
	AddToCart(ctx context.Context, customerID int64, target domain.OrderTarget, inventoryID int64) error
}
