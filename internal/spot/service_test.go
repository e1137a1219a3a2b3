package spot

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, spotNumber string, level int, spotType SpotType, pricePerHour float64) (*Spot, error) {
	args := m.Called(ctx, spotNumber, level, spotType, pricePerHour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Spot), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Spot), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Spot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Spot), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, s *Spot) (*Spot, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Spot), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	return m.Called(ctx, id, available).Error(0)
}

func (m *MockRepository) SpotNumberExists(ctx context.Context, spotNumber string) (bool, error) {
	args := m.Called(ctx, spotNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) HasBookings(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateSpotRequest
		setupMock   func(*MockRepository)
		expectedErr error
	}{
		{
			name: "successful creation",
			req:  CreateSpotRequest{SpotNumber: "C1", Level: 3, Type: "STANDARD", PricePerHour: 2.5},
			setupMock: func(m *MockRepository) {
				m.On("SpotNumberExists", mock.Anything, "C1").Return(false, nil)
				m.On("Create", mock.Anything, "C1", 3, TypeStandard, 2.5).Return(&Spot{
					ID: 21, SpotNumber: "C1", Level: 3, Type: TypeStandard, PricePerHour: 2.5, IsAvailable: true,
				}, nil)
			},
		},
		{
			name:        "invalid spot type",
			req:         CreateSpotRequest{SpotNumber: "C1", Level: 3, Type: "premium", PricePerHour: 2.5},
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrInvalidSpotType,
		},
		{
			name: "duplicate spot number",
			req:  CreateSpotRequest{SpotNumber: "A1", Level: 1, Type: "STANDARD", PricePerHour: 2.5},
			setupMock: func(m *MockRepository) {
				m.On("SpotNumberExists", mock.Anything, "A1").Return(true, nil)
			},
			expectedErr: ErrDuplicateSpotNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo)

			svc := NewService(repo)
			created, err := svc.Create(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.SpotNumber, created.SpotNumber)
			assert.True(t, created.IsAvailable)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Update(t *testing.T) {
	existing := func() *Spot {
		return &Spot{ID: 1, SpotNumber: "A1", Level: 1, Type: TypeStandard, PricePerHour: 3.0, IsAvailable: true}
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
		newPrice := 4.5
		repo.On("Update", mock.Anything, mock.MatchedBy(func(s *Spot) bool {
			return s.SpotNumber == "A1" && s.PricePerHour == 4.5
		})).Return(&Spot{ID: 1, SpotNumber: "A1", Level: 1, Type: TypeStandard, PricePerHour: 4.5, IsAvailable: true}, nil)

		svc := NewService(repo)
		updated, err := svc.Update(context.Background(), 1, UpdateSpotRequest{PricePerHour: &newPrice})

		assert.NoError(t, err)
		assert.Equal(t, 4.5, updated.PricePerHour)
	})

	t.Run("renaming to an existing number is rejected", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, 1).Return(existing(), nil)
		taken := "B1"
		repo.On("SpotNumberExists", mock.Anything, "B1").Return(true, nil)

		svc := NewService(repo)
		_, err := svc.Update(context.Background(), 1, UpdateSpotRequest{SpotNumber: &taken})

		assert.ErrorIs(t, err, ErrDuplicateSpotNumber)
	})

	t.Run("missing spot", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

		svc := NewService(repo)
		_, err := svc.Update(context.Background(), 99, UpdateSpotRequest{})

		assert.ErrorIs(t, err, ErrSpotNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("spot with bookings cannot be deleted", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, 1).Return(&Spot{ID: 1, SpotNumber: "A1"}, nil)
		repo.On("HasBookings", mock.Anything, 1).Return(true, nil)

		svc := NewService(repo)
		err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, ErrSpotHasBookings)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("clean spot deletes", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, 1).Return(&Spot{ID: 1, SpotNumber: "A1"}, nil)
		repo.On("HasBookings", mock.Anything, 1).Return(false, nil)
		repo.On("Delete", mock.Anything, 1).Return(nil)

		svc := NewService(repo)
		assert.NoError(t, svc.Delete(context.Background(), 1))
	})
}

func TestService_SetAvailability(t *testing.T) {
	t.Run("disable spot", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("SetAvailability", mock.Anything, 1, false).Return(nil)
		repo.On("GetByID", mock.Anything, 1).Return(&Spot{ID: 1, SpotNumber: "A1", IsAvailable: false}, nil)

		svc := NewService(repo)
		sp, err := svc.SetAvailability(context.Background(), 1, false)

		assert.NoError(t, err)
		assert.False(t, sp.IsAvailable)
	})

	t.Run("missing spot", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("SetAvailability", mock.Anything, 99, true).Return(ErrSpotNotFoundOrUnchanged)

		svc := NewService(repo)
		_, err := svc.SetAvailability(context.Background(), 99, true)

		assert.ErrorIs(t, err, ErrSpotNotFound)
	})
}
