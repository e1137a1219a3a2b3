package dashboard

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}

func (r *repository) CountActiveBookings(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE status IN ('PENDING', 'CONFIRMED')`)
	return count, err
}

// CountUnavailableSpots counts spots whose administrative flag is off. Spot
// occupancy on the dashboard is this manual flag, not booking-derived.
func (r *repository) CountUnavailableSpots(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM parking_spots WHERE is_available = false`)
	return count, err
}

func (r *repository) RevenueOn(ctx context.Context, date string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE booking_date = $1 AND status <> 'CANCELLED'
	`

	var revenue float64
	err := r.db.GetContext(ctx, &revenue, query, date)
	return revenue, err
}

// OccupancyByStartHour buckets non-cancelled bookings by start hour over all
// dates ever booked, not just today.
func (r *repository) OccupancyByStartHour(ctx context.Context) (map[int]int, error) {
	query := `
		SELECT CAST(SUBSTRING(start_time, 1, 2) AS INTEGER) AS hour, COUNT(*) AS count
		FROM bookings
		WHERE status <> 'CANCELLED'
		GROUP BY 1
	`

	var rows []hourCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Hour] = row.Count
	}

	return counts, nil
}

func (r *repository) RecentBookings(ctx context.Context, limit int) ([]RecentBooking, error) {
	// Inner joins drop bookings whose user or spot reference cannot be
	// resolved, matching the dashboard contract.
	query := `
		SELECT
			b.id,
			u.name AS user_name,
			s.spot_number AS spot_number,
			b.booking_date,
			b.start_time,
			b.end_time,
			b.total_price,
			b.status,
			b.created_at
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN parking_spots s ON b.spot_id = s.id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1
	`

	var bookings []RecentBooking
	if err := r.db.SelectContext(ctx, &bookings, query, limit); err != nil {
		return nil, err
	}

	return bookings, nil
}
