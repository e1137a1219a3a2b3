package spot

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSpotNotFoundOrUnchanged = errors.New("parking spot not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, spotNumber string, level int, spotType SpotType, pricePerHour float64) (*Spot, error) {
	query := `
		INSERT INTO parking_spots (spot_number, level, spot_type, price_per_hour)
		VALUES ($1, $2, $3, $4)
		RETURNING id, spot_number, level, spot_type, price_per_hour, is_available, created_at
	`

	var s Spot
	err := r.db.GetContext(ctx, &s, query, spotNumber, level, spotType, pricePerHour)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Spot, error) {
	query := `
		SELECT id, spot_number, level, spot_type, price_per_hour, is_available, created_at
		FROM parking_spots
		WHERE id = $1
	`

	var s Spot
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Spot, error) {
	query := `
		SELECT id, spot_number, level, spot_type, price_per_hour, is_available, created_at
		FROM parking_spots
		ORDER BY level ASC, spot_number ASC
	`

	var spots []Spot
	err := r.db.SelectContext(ctx, &spots, query)
	if err != nil {
		return nil, err
	}

	return spots, nil
}

func (r *repository) Update(ctx context.Context, s *Spot) (*Spot, error) {
	query := `
		UPDATE parking_spots
		SET spot_number = $2, level = $3, spot_type = $4, price_per_hour = $5
		WHERE id = $1
		RETURNING id, spot_number, level, spot_type, price_per_hour, is_available, created_at
	`

	var updated Spot
	err := r.db.GetContext(ctx, &updated, query, s.ID, s.SpotNumber, s.Level, s.Type, s.PricePerHour)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM parking_spots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSpotNotFoundOrUnchanged
	}

	return nil
}

func (r *repository) SetAvailability(ctx context.Context, id int, available bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE parking_spots SET is_available = $2 WHERE id = $1`, id, available)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSpotNotFoundOrUnchanged
	}

	return nil
}

func (r *repository) SpotNumberExists(ctx context.Context, spotNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM parking_spots WHERE spot_number = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, spotNumber)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) HasBookings(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE spot_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, err
	}

	return exists, nil
}
