//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/handler/api"
	resdto "holiday-booker/internal/handler/dto/response"
	"holiday-booker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogUseCase struct {
	packages   []*holiday.Package
	listErr    error
	gotFilters holiday.SearchFilters
	pkg        *holiday.Package
	getErr     error
}

func (s *stubCatalogUseCase) ListPackages(_ context.Context, filters holiday.SearchFilters) ([]*holiday.Package, error) {
	s.gotFilters = filters
	return s.packages, s.listErr
}

func (s *stubCatalogUseCase) GetPackage(context.Context, string) (*holiday.Package, error) {
	return s.pkg, s.getErr
}

func holidayRouter(stub *stubCatalogUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewHolidayHandler(stub)
	router.GET("/api/holidays", handler.List)
	router.GET("/api/holidays/:id", handler.Get)
	return router
}

func baliPackage() *holiday.Package {
	original := 1599.0
	return &holiday.Package{
		ID: "p1", Name: "Bali Tropical Escape", Destination: "Bali, Indonesia",
		Duration: "7 days", Price: 1299, OriginalPrice: &original,
		Category: holiday.CategoryBeach, AvailableDates: []string{"2026-10-05"},
	}
}

func TestListHolidaysHandler(t *testing.T) {
	t.Run("200 with packages", func(t *testing.T) {
		stub := &stubCatalogUseCase{packages: []*holiday.Package{baliPackage()}}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet, "/api/holidays", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []*resdto.PackageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Bali Tropical Escape", resp[0].Name)
		require.NotNil(t, resp[0].OriginalPrice)
		assert.Equal(t, 1599.0, *resp[0].OriginalPrice)
	})

	t.Run("query parameters become filters", func(t *testing.T) {
		stub := &stubCatalogUseCase{}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet,
			"/api/holidays?destination=bali&category=beach&minPrice=100&maxPrice=2000", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, holiday.SearchFilters{
			Destination: "bali",
			Category:    "beach",
			MinPrice:    100,
			MaxPrice:    2000,
		}, stub.gotFilters)
	})

	t.Run("unparseable prices are ignored", func(t *testing.T) {
		stub := &stubCatalogUseCase{}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet, "/api/holidays?minPrice=cheap", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, stub.gotFilters.MinPrice)
	})

	t.Run("500 on storage failure", func(t *testing.T) {
		stub := &stubCatalogUseCase{listErr: errs.ErrStorageUnavailable}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet, "/api/holidays", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetHolidayHandler(t *testing.T) {
	t.Run("200 with the package", func(t *testing.T) {
		stub := &stubCatalogUseCase{pkg: baliPackage()}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet, "/api/holidays/p1", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.PackageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "p1", resp.ID)
	})

	t.Run("404 for unknown id", func(t *testing.T) {
		stub := &stubCatalogUseCase{getErr: errs.ErrPackageNotFound}
		rec := performJSON(t, holidayRouter(stub), http.MethodGet, "/api/holidays/ghost", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
