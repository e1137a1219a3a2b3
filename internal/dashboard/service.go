package dashboard

import (
	"context"
	"time"

	"parkspot/internal/booking"
)

const recentBookingsLimit = 5

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	activeBookings, err := s.repo.CountActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	occupiedSpots, err := s.repo.CountUnavailableSpots(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(booking.DateLayout)
	revenueToday, err := s.repo.RevenueOn(ctx, today)
	if err != nil {
		return nil, err
	}

	hourCounts, err := s.repo.OccupancyByStartHour(ctx)
	if err != nil {
		return nil, err
	}

	occupancy := make([]HourOccupancy, 24)
	for hour := 0; hour < 24; hour++ {
		occupancy[hour] = HourOccupancy{
			Hour:  booking.FormatClock(hour * 60),
			Count: hourCounts[hour],
		}
	}

	recent, err := s.repo.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	for i := range recent {
		recent[i].StatusLabel = booking.Status(recent[i].Status).DisplayLabel()
	}

	return &Stats{
		TotalUsers:      totalUsers,
		ActiveBookings:  activeBookings,
		OccupiedSpots:   occupiedSpots,
		RevenueToday:    revenueToday,
		OccupancyByHour: occupancy,
		RecentBookings:  recent,
	}, nil
}
