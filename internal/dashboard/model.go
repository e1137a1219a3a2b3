package dashboard

import "time"

type Stats struct {
	TotalUsers      int             `json:"total_users"`
	ActiveBookings  int             `json:"active_bookings"`
	OccupiedSpots   int             `json:"occupied_spots"`
	RevenueToday    float64         `json:"revenue_today"`
	OccupancyByHour []HourOccupancy `json:"occupancy_by_hour"`
	RecentBookings  []RecentBooking `json:"recent_bookings"`
}

// HourOccupancy counts non-cancelled bookings starting within one hour
// bucket, across every date ever booked.
type HourOccupancy struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type RecentBooking struct {
	ID          int       `db:"id" json:"id"`
	UserName    string    `db:"user_name" json:"user_name"`
	SpotNumber  string    `db:"spot_number" json:"spot_number"`
	Date        string    `db:"booking_date" json:"date"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	TotalPrice  float64   `db:"total_price" json:"total_price"`
	Status      string    `db:"status" json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type hourCount struct {
	Hour  int `db:"hour"`
	Count int `db:"count"`
}
