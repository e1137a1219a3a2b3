package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parkspot/internal/auth"
	"parkspot/internal/logger"
	"parkspot/internal/metrics"
	"parkspot/internal/spot"
)

var (
	ErrSpotNotFound    = errors.New("parking spot not found")
	ErrWindowTaken     = errors.New("spot is not available for the selected time slot")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("can only cancel own bookings")
	ErrInvalidState    = errors.New("invalid booking state")
)

// Notifier delivers booking lifecycle notifications. Failures are logged,
// never surfaced to the caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, spotNumber, date, startTime, endTime string) error
	SendBookingCancellation(ctx context.Context, to, name, spotNumber, date, startTime string) error
}

type Service interface {
	AvailableSpots(ctx context.Context, date, startTime string, durationHours int) ([]spot.Spot, error)
	CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*BookingWithDetails, error)
	CancelBooking(ctx context.Context, bookingID, requesterID int, requesterRole string) error
	CompleteBooking(ctx context.Context, bookingID int) error
	ListUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	ListBySpot(ctx context.Context, spotID int) ([]BookingWithDetails, error)
}

type service struct {
	repo     Repository
	spotRepo spot.Repository
	notifier Notifier
}

func NewService(repo Repository, spotRepo spot.Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		spotRepo: spotRepo,
		notifier: notifier,
	}
}

// AvailableSpots returns every spot free for the requested window: the spot's
// administrative flag must be on and no PENDING or CONFIRMED booking on that
// date may overlap [start, start+duration) under half-open semantics.
func (s *service) AvailableSpots(ctx context.Context, date, startTime string, durationHours int) ([]spot.Spot, error) {
	w, err := ParseWindow(date, startTime, durationHours)
	if err != nil {
		return nil, err
	}

	spots, err := s.spotRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.ActiveOnDate(ctx, w.Date)
	if err != nil {
		return nil, err
	}

	bySpot := make(map[int][]Booking, len(active))
	for _, b := range active {
		bySpot[b.SpotID] = append(bySpot[b.SpotID], b)
	}

	available := make([]spot.Spot, 0, len(spots))
	for _, sp := range spots {
		if !sp.IsAvailable {
			continue
		}
		if overlapsAny(w, bySpot[sp.ID]) {
			continue
		}
		available = append(available, sp)
	}

	return available, nil
}

func overlapsAny(w Window, bookings []Booking) bool {
	for _, b := range bookings {
		start, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		end := start + b.DurationHours*60
		if w.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func (s *service) CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*BookingWithDetails, error) {
	w, err := ParseWindow(req.Date, req.StartTime, req.DurationHours)
	if err != nil {
		return nil, err
	}

	sp, err := s.spotRepo.GetByID(ctx, req.SpotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	// An administratively disabled spot is never bookable, bookings or not.
	if !sp.IsAvailable {
		return nil, ErrWindowTaken
	}

	b := &Booking{
		UserID:        userID,
		SpotID:        sp.ID,
		Date:          w.Date,
		StartTime:     w.Start(),
		EndTime:       w.End(),
		DurationHours: w.DurationHours,
		TotalPrice:    sp.PricePerHour * float64(w.DurationHours),
		Status:        StatusConfirmed,
	}

	created, err := s.repo.CreateConfirmed(ctx, b)
	if err != nil {
		if errors.Is(err, ErrWindowTaken) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	metrics.RecordBooking(string(created.Status))

	details, err := s.repo.GetDetails(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, details)

	return details, nil
}

func (s *service) notifyConfirmation(ctx context.Context, b *BookingWithDetails) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.SendBookingConfirmation(ctx, b.UserEmail, b.UserName, b.SpotNumber, b.Date, b.StartTime, b.EndTime)
	if err != nil {
		logger.Errorf("Failed to queue confirmation email for booking %d: %v", b.ID, err)
	}
}

func (s *service) CancelBooking(ctx context.Context, bookingID, requesterID int, requesterRole string) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}

	if b.UserID != requesterID && requesterRole != auth.RoleAdmin {
		return ErrNotOwner
	}

	if b.Status.Terminal() {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidState, b.Status)
	}

	if err := s.repo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, ErrBookingNotActive) {
			return fmt.Errorf("%w: booking is no longer active", ErrInvalidState)
		}
		return err
	}

	metrics.RecordBookingCancellation()
	s.notifyCancellation(ctx, bookingID)

	return nil
}

func (s *service) notifyCancellation(ctx context.Context, bookingID int) {
	if s.notifier == nil {
		return
	}
	details, err := s.repo.GetDetails(ctx, bookingID)
	if err != nil {
		logger.Errorf("Failed to load booking %d for cancellation email: %v", bookingID, err)
		return
	}
	err = s.notifier.SendBookingCancellation(ctx, details.UserEmail, details.UserName, details.SpotNumber, details.Date, details.StartTime)
	if err != nil {
		logger.Errorf("Failed to queue cancellation email for booking %d: %v", bookingID, err)
	}
}

func (s *service) CompleteBooking(ctx context.Context, bookingID int) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}

	if b.Status != StatusConfirmed {
		return fmt.Errorf("%w: booking is %s", ErrInvalidState, b.Status)
	}

	if err := s.repo.Complete(ctx, bookingID); err != nil {
		if errors.Is(err, ErrNotConfirmed) {
			return fmt.Errorf("%w: booking is no longer confirmed", ErrInvalidState)
		}
		return err
	}

	return nil
}

func (s *service) ListUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListBySpot(ctx context.Context, spotID int) ([]BookingWithDetails, error) {
	return s.repo.ListBySpot(ctx, spotID)
}
