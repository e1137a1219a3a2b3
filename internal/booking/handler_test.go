package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkspot/internal/spot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) AvailableSpots(ctx context.Context, date, startTime string, durationHours int) ([]spot.Spot, error) {
	args := m.Called(ctx, date, startTime, durationHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spot.Spot), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*BookingWithDetails, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingWithDetails), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID, requesterID int, requesterRole string) error {
	return m.Called(ctx, bookingID, requesterID, requesterRole).Error(0)
}

func (m *MockBookingService) CompleteBooking(ctx context.Context, bookingID int) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockBookingService) ListUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockBookingService) ListBySpot(ctx context.Context, spotID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func setupRouter(svc Service, userID int, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	})

	h := NewHandler(svc)
	router.GET("/spots/available", h.AvailableSpots)
	router.POST("/bookings", h.CreateBooking)
	router.POST("/bookings/:bookingID/cancel", h.CancelBooking)
	router.POST("/admin/bookings/:bookingID/complete", h.CompleteBooking)
	return router
}

func TestHandler_AvailableSpots(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("AvailableSpots", mock.Anything, "2025-07-15", "10:00", 2).Return([]spot.Spot{
		{ID: 1, SpotNumber: "A1"},
	}, nil)

	router := setupRouter(svc, 7, "member")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/spots/available?date=2025-07-15&start_time=10:00&duration=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var spots []spot.Spot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
	assert.Len(t, spots, 1)
	assert.Equal(t, "A1", spots[0].SpotNumber)
}

func TestHandler_AvailableSpots_InvalidWindow(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("AvailableSpots", mock.Anything, "2025-07-15", "23:00", 2).
		Return(nil, fmt.Errorf("%w: booking cannot extend past midnight", ErrInvalidWindow))

	router := setupRouter(svc, 7, "member")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/spots/available?date=2025-07-15&start_time=23:00&duration=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid window", ErrInvalidWindow, http.StatusBadRequest},
		{"spot not found", ErrSpotNotFound, http.StatusNotFound},
		{"window taken", ErrWindowTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			if tt.serviceErr != nil {
				svc.On("CreateBooking", mock.Anything, 7, mock.Anything).Return(nil, tt.serviceErr)
			} else {
				svc.On("CreateBooking", mock.Anything, 7, mock.Anything).Return(&BookingWithDetails{
					Booking: Booking{ID: 42, Status: StatusConfirmed},
				}, nil)
			}

			router := setupRouter(svc, 7, "member")
			body, _ := json.Marshal(CreateBookingRequest{
				SpotID: 1, Date: "2025-07-15", StartTime: "10:00", DurationHours: 2,
			})
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", ErrBookingNotFound, http.StatusNotFound},
		{"not owner", ErrNotOwner, http.StatusForbidden},
		{"already terminal", fmt.Errorf("%w: booking is already CANCELLED", ErrInvalidState), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("CancelBooking", mock.Anything, 42, 7, "member").Return(tt.serviceErr)

			router := setupRouter(svc, 7, "member")
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/bookings/42/cancel", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_CompleteBooking(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CompleteBooking", mock.Anything, 42).
		Return(fmt.Errorf("%w: booking is CANCELLED", ErrInvalidState))

	router := setupRouter(svc, 1, "admin")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/bookings/42/complete", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
