package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotActive = errors.New("booking not found or not active")
	ErrNotConfirmed     = errors.New("booking not found or not confirmed")
)

const detailsQuery = `
	SELECT
		b.id,
		b.user_id,
		b.spot_id,
		b.booking_date,
		b.start_time,
		b.end_time,
		b.duration_hours,
		b.total_price,
		b.status,
		b.created_at,
		u.name AS user_name,
		u.email AS user_email,
		s.spot_number AS spot_number,
		s.level AS spot_level,
		s.spot_type AS spot_type
	FROM bookings b
	JOIN users u ON b.user_id = u.id
	JOIN parking_spots s ON b.spot_id = s.id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateConfirmed(ctx context.Context, b *Booking) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The row lock serializes concurrent bookings for the same spot, so the
	// overlap re-check and the insert act as one atomic unit.
	var spotID int
	err = tx.GetContext(ctx, &spotID, `SELECT id FROM parking_spots WHERE id = $1 FOR UPDATE`, b.SpotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	var taken bool
	err = tx.GetContext(ctx, &taken, `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE spot_id = $1
			  AND booking_date = $2
			  AND status IN ('PENDING', 'CONFIRMED')
			  AND start_time < $4
			  AND end_time > $3
		)
	`, b.SpotID, b.Date, b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrWindowTaken
	}

	var created Booking
	err = tx.GetContext(ctx, &created, `
		INSERT INTO bookings (user_id, spot_id, booking_date, start_time, end_time, duration_hours, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'CONFIRMED')
		RETURNING id, user_id, spot_id, booking_date, start_time, end_time, duration_hours, total_price, status, created_at
	`, b.UserID, b.SpotID, b.Date, b.StartTime, b.EndTime, b.DurationHours, b.TotalPrice)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, user_id, spot_id, booking_date, start_time, end_time, duration_hours, total_price, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	var b BookingWithDetails
	err := r.db.GetContext(ctx, &b, detailsQuery+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// Cancel flips an active booking to CANCELLED. The record is kept so it
// remains visible in history and dashboard aggregates.
func (r *repository) Cancel(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET status = 'CANCELLED'
		WHERE id = $1 AND status IN ('PENDING', 'CONFIRMED')
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotActive
	}

	return nil
}

func (r *repository) Complete(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET status = 'COMPLETED'
		WHERE id = $1 AND status = 'CONFIRMED'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotConfirmed
	}

	return nil
}

func (r *repository) ActiveOnDate(ctx context.Context, date string) ([]Booking, error) {
	query := `
		SELECT id, user_id, spot_id, booking_date, start_time, end_time, duration_hours, total_price, status, created_at
		FROM bookings
		WHERE booking_date = $1 AND status IN ('PENDING', 'CONFIRMED')
		ORDER BY spot_id ASC, start_time ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, detailsQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListBySpot(ctx context.Context, spotID int) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, detailsQuery+` WHERE b.spot_id = $1 ORDER BY b.booking_date DESC, b.start_time DESC`, spotID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
