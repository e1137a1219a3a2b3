package spot

import "context"

type Repository interface {
	Create(ctx context.Context, spotNumber string, level int, spotType SpotType, pricePerHour float64) (*Spot, error)
	GetByID(ctx context.Context, id int) (*Spot, error)
	GetAll(ctx context.Context) ([]Spot, error)
	Update(ctx context.Context, s *Spot) (*Spot, error)
	Delete(ctx context.Context, id int) error
	SetAvailability(ctx context.Context, id int, available bool) error
	SpotNumberExists(ctx context.Context, spotNumber string) (bool, error)
	HasBookings(ctx context.Context, id int) (bool, error)
}
