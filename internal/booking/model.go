package booking

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether no further status transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// DisplayLabel is the dashboard-facing name of a status.
func (s Status) DisplayLabel() string {
	switch s {
	case StatusConfirmed:
		return "Active"
	case StatusPending:
		return "Upcoming"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

type Booking struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	SpotID        int       `db:"spot_id" json:"spot_id"`
	Date          string    `db:"booking_date" json:"date"`
	StartTime     string    `db:"start_time" json:"start_time"`
	EndTime       string    `db:"end_time" json:"end_time"`
	DurationHours int       `db:"duration_hours" json:"duration_hours"`
	TotalPrice    float64   `db:"total_price" json:"total_price"`
	Status        Status    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	UserName   string `db:"user_name" json:"user_name"`
	UserEmail  string `db:"user_email" json:"user_email"`
	SpotNumber string `db:"spot_number" json:"spot_number"`
	SpotLevel  int    `db:"spot_level" json:"spot_level"`
	SpotType   string `db:"spot_type" json:"spot_type"`
}

type CreateBookingRequest struct {
	SpotID        int    `json:"spot_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
}
