package repository

import (
	"context"

	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/infra/converter"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/errs"
)

// CatalogRepository reads the package catalog. The catalog is reference
// data owned by the seeder; the booking core only reads it.
type CatalogRepository struct {
	store store.Store
}

func NewCatalogRepository(s store.Store) *CatalogRepository {
	return &CatalogRepository{store: s}
}

func (r *CatalogRepository) FindPackage(ctx context.Context, id string) (*holiday.Package, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range snap.Packages {
		if rec.ID == id {
			return converter.PackageFromRecord(rec), nil
		}
	}
	return nil, errs.ErrPackageNotFound
}

func (r *CatalogRepository) ListPackages(ctx context.Context) ([]*holiday.Package, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*holiday.Package, len(snap.Packages))
	for i, rec := range snap.Packages {
		out[i] = converter.PackageFromRecord(rec)
	}
	return out, nil
}

// Seed inserts packages that are not present yet, keyed by id. Existing
// packages are left untouched so reseeding is safe.
func (r *CatalogRepository) Seed(ctx context.Context, pkgs []*holiday.Package) error {
	return r.store.Update(ctx, func(snap *store.Snapshot) error {
		for _, p := range pkgs {
			if packageExists(snap, p.ID) {
				continue
			}
			snap.Packages = append(snap.Packages, converter.PackageToRecord(p))
		}
		return nil
	})
}
