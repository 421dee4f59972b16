package api

import (
	"errors"
	"net/http"

	reqdto "holiday-booker/internal/handler/dto/request"
	resdto "holiday-booker/internal/handler/dto/response"
	"holiday-booker/internal/handler/httperr"
	"holiday-booker/internal/handler/middleware"
	"holiday-booker/internal/pkg/errs"
	"holiday-booker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create a booking
// @Description Book a holiday package for the authenticated user
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	entity, err := h.bookingUseCase.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPackageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found")
		case errors.Is(err, errs.ErrInvalidBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(entity))
}

// @Summary Cancel a booking
// @Description Cancel a booking by id. Cancelling an already cancelled booking succeeds.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID := c.Param("id")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking ID is required",
		})
		return
	}

	cancelled, err := h.bookingUseCase.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel booking")
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{
		Message: "Booking cancelled successfully",
	})
}

// @Summary List bookings for the current user
// @Description List all bookings owned by the authenticated user
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookings, err := h.bookingUseCase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary List all bookings
// @Description List every booking in the system. Admin only.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings/all [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}
