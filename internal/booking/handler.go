package booking

import (
	"errors"
	"net/http"
	"strconv"

	"parkspot/internal/api"
	"parkspot/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AvailableSpots godoc
// @Summary      Search available spots
// @Description  Returns every parking spot free for the requested [date, start, duration) window.
// @Tags         bookings,spots
// @Security     BearerAuth
// @Produce      json
// @Param        date        query     string  true  "Calendar date (YYYY-MM-DD)"
// @Param        start_time  query     string  true  "Start of window (HH:MM, 24-hour)"
// @Param        duration    query     int     true  "Duration in whole hours"
// @Success      200         {array}   spot.Spot
// @Failure      400         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /spots/available [get]
func (h *Handler) AvailableSpots(c *gin.Context) {
	date := c.Query("date")
	startTime := c.Query("start_time")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid duration"})
		return
	}

	spots, err := h.service.AvailableSpots(c.Request.Context(), date, startTime, duration)
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute availability"})
		return
	}

	c.JSON(http.StatusOK, spots)
}

// CreateBooking godoc
// @Summary      Book a parking spot
// @Description  Creates a CONFIRMED booking when the spot is free for the whole window.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      booking.CreateBookingRequest  true  "Booking payload"
// @Success      201      {object}  booking.BookingWithDetails
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSpotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Spot not found"})
		case errors.Is(err, ErrWindowTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Spot is not available for the selected time slot"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Soft-cancels a booking. Owners can cancel their own bookings, admins any.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	err = h.service.CancelBooking(c.Request.Context(), bookingID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only cancel your own bookings"})
		case errors.Is(err, ErrInvalidState):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled successfully"})
}

// CompleteBooking godoc
// @Summary      Mark a booking completed
// @Description  Admin-only: transitions a CONFIRMED booking to COMPLETED.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/complete [post]
func (h *Handler) CompleteBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	err = h.service.CompleteBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrInvalidState):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to complete booking"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking completed"})
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   booking.BookingWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookingsBySpot godoc
// @Summary      List bookings for a spot
// @Description  Admin-only: booking history of one parking spot.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        spotID  path      int  true  "Spot ID"
// @Success      200     {array}   booking.BookingWithDetails
// @Failure      400     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/spots/{spotID}/bookings [get]
func (h *Handler) ListBookingsBySpot(c *gin.Context) {
	spotID, err := strconv.Atoi(c.Param("spotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot ID"})
		return
	}

	bookings, err := h.service.ListBySpot(c.Request.Context(), spotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
