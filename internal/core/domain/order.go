package domain

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInconsistentInventory = errors.New("more than one inventory row matches")
	ErrDuplicateSubmission   = errors.New("cart addition already submitted")
	ErrMutationFailed        = errors.New("add to cart failed")
)

// OrderTarget is where a cart addition goes: an existing order when
// OrderID is set, otherwise a new order created by the store.
type OrderTarget struct {
	OrderID *int64
}

func NewOrderTarget() OrderTarget {
	return OrderTarget{}
}

func ExistingOrder(id int64) OrderTarget {
	return OrderTarget{OrderID: &id}
}

func (t OrderTarget) IsNew() bool {
	return t.OrderID == nil
}

// CartAddition describes a successful AddToCart call.
type CartAddition struct {
	CustomerID  int64
	InventoryID int64
	Target      OrderTarget
}
