package service

import (
	"context"
	"log/slog"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/port"
)

// AuthService checks customer credentials. Passwords are compared as stored,
// without hashing.
type AuthService struct {
	customers port.CustomerRepository
	logger    *slog.Logger
}

func NewAuthService(customers port.CustomerRepository, logger *slog.Logger) *AuthService {
	return &AuthService{customers: customers, logger: logger}
}

// Login fails closed: a store error is logged and reported as a failed login.
func (s *AuthService) Login(ctx context.Context, username, password string) bool {
	ok, err := s.customers.CustomerExists(ctx, username, password)
	if err != nil {
		s.logger.Error("login query failed", "username", username, "error", err)
		return false
	}
	return ok
}

// ResolveCustomerID returns domain.UnknownCustomerID when the name has no
// customer row or the lookup fails.
func (s *AuthService) ResolveCustomerID(ctx context.Context, username string) int64 {
	id, ok, err := s.customers.CustomerID(ctx, username)
	if err != nil {
		s.logger.Error("customer id lookup failed", "username", username, "error", err)
		return domain.UnknownCustomerID
	}
	if !ok {
		return domain.UnknownCustomerID
	}
	return id
}
