package booking

import "context"

type Repository interface {
	// CreateConfirmed inserts a CONFIRMED booking after re-checking the
	// window under a row lock on the spot. Returns ErrWindowTaken when an
	// active booking overlaps, ErrSpotNotFound when the spot is gone.
	CreateConfirmed(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetDetails(ctx context.Context, id int) (*BookingWithDetails, error)
	Cancel(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	ActiveOnDate(ctx context.Context, date string) ([]Booking, error)
	ListByUser(ctx context.Context, userID int) ([]BookingWithDetails, error)
	ListBySpot(ctx context.Context, spotID int) ([]BookingWithDetails, error)
}
