package usecase

import (
	"context"
	"log/slog"

	"holiday-booker/internal/domain/holiday"
)

type CatalogRepository interface {
	FindPackage(ctx context.Context, id string) (*holiday.Package, error)
	ListPackages(ctx context.Context) ([]*holiday.Package, error)
}

// CatalogCache is optional; a nil cache disables caching entirely and
// cache failures only cost a store read.
type CatalogCache interface {
	GetPackages(ctx context.Context) ([]*holiday.Package, error)
	SetPackages(ctx context.Context, pkgs []*holiday.Package) error
}

type CatalogUseCase interface {
	ListPackages(ctx context.Context, filters holiday.SearchFilters) ([]*holiday.Package, error)
	GetPackage(ctx context.Context, id string) (*holiday.Package, error)
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
	cache       CatalogCache
}

func NewCatalogUseCase(catalogRepo CatalogRepository, cache CatalogCache) CatalogUseCase {
	return &catalogUseCaseImpl{
		catalogRepo: catalogRepo,
		cache:       cache,
	}
}

func (c *catalogUseCaseImpl) ListPackages(ctx context.Context, filters holiday.SearchFilters) ([]*holiday.Package, error) {
	pkgs, err := c.allPackages(ctx)
	if err != nil {
		return nil, err
	}

	out := []*holiday.Package{}
	for _, p := range pkgs {
		if filters.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *catalogUseCaseImpl) GetPackage(ctx context.Context, id string) (*holiday.Package, error) {
	return c.catalogRepo.FindPackage(ctx, id)
}

func (c *catalogUseCaseImpl) allPackages(ctx context.Context) ([]*holiday.Package, error) {
	if c.cache != nil {
		cached, err := c.cache.GetPackages(ctx)
		if err != nil {
			slog.Warn("catalog cache read failed", "error", err.Error())
		} else if cached != nil {
			return cached, nil
		}
	}

	pkgs, err := c.catalogRepo.ListPackages(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetPackages(ctx, pkgs); err != nil {
			slog.Warn("catalog cache write failed", "error", err.Error())
		}
	}
	return pkgs, nil
}
