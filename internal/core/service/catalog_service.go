package service

import (
	"context"
	"log/slog"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/port"
)

// CatalogService enumerates option sets. A failed query is logged and yields
// an empty set, which callers treat as "no valid choices".
type CatalogService struct {
	catalog port.CatalogRepository
	logger  *slog.Logger
}

func NewCatalogService(catalog port.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

func (s *CatalogService) ListModels(ctx context.Context) []string {
	models, err := s.catalog.Models(ctx)
	if err != nil {
		s.logger.Error("list models failed", "error", err)
		return []string{}
	}
	return orEmpty(models)
}

func (s *CatalogService) ListSizesForModel(ctx context.Context, model string) []int {
	sizes, err := s.catalog.SizesForModel(ctx, model)
	if err != nil {
		s.logger.Error("list sizes failed", "model", model, "error", err)
		return []int{}
	}
	return orEmpty(sizes)
}

func (s *CatalogService) ListColorsForModelAndSize(ctx context.Context, model string, size int) []string {
	colors, err := s.catalog.ColorsForModelAndSize(ctx, model, size)
	if err != nil {
		s.logger.Error("list colors failed", "model", model, "size", size, "error", err)
		return []string{}
	}
	return orEmpty(colors)
}

func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
