package dashboard

import "context"

type Repository interface {
	CountUsers(ctx context.Context) (int, error)
	CountActiveBookings(ctx context.Context) (int, error)
	CountUnavailableSpots(ctx context.Context) (int, error)
	RevenueOn(ctx context.Context, date string) (float64, error)
	OccupancyByStartHour(ctx context.Context) (map[int]int, error)
	RecentBookings(ctx context.Context, limit int) ([]RecentBooking, error)
}
