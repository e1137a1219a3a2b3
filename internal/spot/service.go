package spot

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrSpotNotFound        = errors.New("parking spot not found")
	ErrDuplicateSpotNumber = errors.New("spot number already exists")
	ErrInvalidSpotType     = errors.New("invalid spot type")
	ErrSpotHasBookings     = errors.New("spot has bookings and cannot be deleted")
)

type Service interface {
	Create(ctx context.Context, req CreateSpotRequest) (*Spot, error)
	GetAll(ctx context.Context) ([]Spot, error)
	GetByID(ctx context.Context, id int) (*Spot, error)
	Update(ctx context.Context, id int, req UpdateSpotRequest) (*Spot, error)
	Delete(ctx context.Context, id int) error
	SetAvailability(ctx context.Context, id int, available bool) (*Spot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSpotRequest) (*Spot, error) {
	spotType := SpotType(req.Type)
	if !spotType.Valid() {
		return nil, ErrInvalidSpotType
	}

	exists, err := s.repo.SpotNumberExists(ctx, req.SpotNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSpotNumber
	}

	return s.repo.Create(ctx, req.SpotNumber, req.Level, spotType, req.PricePerHour)
}

func (s *service) GetAll(ctx context.Context) ([]Spot, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Spot, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateSpotRequest) (*Spot, error) {
	sp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SpotNumber != nil && *req.SpotNumber != sp.SpotNumber {
		exists, err := s.repo.SpotNumberExists(ctx, *req.SpotNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateSpotNumber
		}
		sp.SpotNumber = *req.SpotNumber
	}
	if req.Level != nil {
		sp.Level = *req.Level
	}
	if req.Type != nil {
		spotType := SpotType(*req.Type)
		if !spotType.Valid() {
			return nil, ErrInvalidSpotType
		}
		sp.Type = spotType
	}
	if req.PricePerHour != nil {
		sp.PricePerHour = *req.PricePerHour
	}

	return s.repo.Update(ctx, sp)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasBookings, err := s.repo.HasBookings(ctx, id)
	if err != nil {
		return err
	}
	if hasBookings {
		return ErrSpotHasBookings
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, ErrSpotNotFoundOrUnchanged) {
		return ErrSpotNotFound
	}
	return err
}

func (s *service) SetAvailability(ctx context.Context, id int, available bool) (*Spot, error) {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, ErrSpotNotFoundOrUnchanged) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}
