package api

import (
	"errors"
	"net/http"
	"strconv"

	"holiday-booker/internal/domain/holiday"
	resdto "holiday-booker/internal/handler/dto/response"
	"holiday-booker/internal/handler/httperr"
	"holiday-booker/internal/pkg/errs"
	"holiday-booker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HolidayHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewHolidayHandler(catalogUseCase usecase.CatalogUseCase) *HolidayHandler {
	return &HolidayHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List holiday packages
// @Description List the package catalog, optionally filtered
// @Tags holidays
// @Produce json
// @Param destination query string false "Destination substring, case-insensitive"
// @Param category query string false "Exact category"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {array} resdto.PackageResponse
// @Failure 500 {object} map[string]string
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	filters := holiday.SearchFilters{
		Destination: c.Query("destination"),
		Category:    c.Query("category"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = v
		}
	}

	packages, err := h.catalogUseCase.ListPackages(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch packages")
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackages(packages))
}

// @Summary Get a holiday package
// @Description Fetch one package by id
// @Tags holidays
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Router /holidays/{id} [get]
func (h *HolidayHandler) Get(c *gin.Context) {
	pkg, err := h.catalogUseCase.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPackageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch package")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackage(pkg))
}
