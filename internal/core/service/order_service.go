package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/port"
)

const submissionKeyPrefix = "cart:submission:"

type OrderService struct {
	orders port.OrderRepository
	guard  port.SubmissionGuard
	logger *slog.Logger
}

func NewOrderService(orders port.OrderRepository, guard port.SubmissionGuard, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		guard:  guard,
		logger: logger,
	}
}

// AddToCart resolves the selection to its inventory row and hands it to the
// store's add-to-cart procedure in a single call. submissionID identifies the
// session; a second call with the same id is rejected before touching the store.
func (s *OrderService) AddToCart(ctx context.Context, submissionID string, sel domain.Selection, customerID int64, target domain.OrderTarget) (*domain.CartAddition, error) {
	inventoryID, err := s.orders.InventoryID(ctx, sel)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInconsistentInventory) {
			return nil, err
		}
		s.logger.Error("inventory lookup failed",
			"model", sel.Model, "size", sel.Size, "color", sel.Color, "error", err)
		return nil, fmt.Errorf("%w: inventory lookup: %v", domain.ErrMutationFailed, err)
	}

	ok, err := s.guard.Claim(ctx, submissionKeyPrefix+submissionID)
	if err != nil {
		// the store call is still made once; the guard only adds protection
		s.logger.Warn("submission guard unavailable", "submission", submissionID, "error", err)
	} else if !ok {
		return nil, domain.ErrDuplicateSubmission
	}

	if err := s.orders.AddToCart(ctx, customerID, target, inventoryID); err != nil {
		s.logger.Error("add to cart failed",
			"customer", customerID, "inventory", inventoryID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrMutationFailed, err)
	}

	s.logger.Info("added to cart",
		"customer", customerID, "inventory", inventoryID, "new_order", target.IsNew())

	return &domain.CartAddition{
		CustomerID:  customerID,
		InventoryID: inventoryID,
		Target:      target,
	}, nil
}
