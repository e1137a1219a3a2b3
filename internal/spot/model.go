package spot

import "time"

type SpotType string

const (
	TypeStandard    SpotType = "STANDARD"
	TypeHandicapped SpotType = "HANDICAPPED"
	TypeElectric    SpotType = "ELECTRIC"
	TypeCompact     SpotType = "COMPACT"
)

func (t SpotType) Valid() bool {
	switch t {
	case TypeStandard, TypeHandicapped, TypeElectric, TypeCompact:
		return true
	}
	return false
}

type Spot struct {
	ID           int       `db:"id" json:"id"`
	SpotNumber   string    `db:"spot_number" json:"spot_number"`
	Level        int       `db:"level" json:"level"`
	Type         SpotType  `db:"spot_type" json:"spot_type"`
	PricePerHour float64   `db:"price_per_hour" json:"price_per_hour"`
	IsAvailable  bool      `db:"is_available" json:"is_available"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateSpotRequest struct {
	SpotNumber   string  `json:"spot_number" binding:"required"`
	Level        int     `json:"level" binding:"required,min=1"`
	Type         string  `json:"spot_type" binding:"required"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
}

type UpdateSpotRequest struct {
	SpotNumber   *string  `json:"spot_number"`
	Level        *int     `json:"level" binding:"omitempty,min=1"`
	Type         *string  `json:"spot_type"`
	PricePerHour *float64 `json:"price_per_hour" binding:"omitempty,gte=0"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
