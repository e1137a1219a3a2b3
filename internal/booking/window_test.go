package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name          string
		date          string
		startTime     string
		durationHours int
		expectError   bool
		wantStart     int
		wantEnd       int
	}{
		{
			name:          "valid two hour window",
			date:          "2025-07-15",
			startTime:     "10:00",
			durationHours: 2,
			wantStart:     600,
			wantEnd:       720,
		},
		{
			name:          "window ending exactly at midnight",
			date:          "2025-07-15",
			startTime:     "22:00",
			durationHours: 2,
			wantStart:     1320,
			wantEnd:       1440,
		},
		{
			name:          "window crossing midnight rejected",
			date:          "2025-07-15",
			startTime:     "23:00",
			durationHours: 2,
			expectError:   true,
		},
		{
			name:          "malformed date",
			date:          "15-07-2025",
			startTime:     "10:00",
			durationHours: 1,
			expectError:   true,
		},
		{
			name:          "malformed start time",
			date:          "2025-07-15",
			startTime:     "10am",
			durationHours: 1,
			expectError:   true,
		},
		{
			name:          "zero duration",
			date:          "2025-07-15",
			startTime:     "10:00",
			durationHours: 0,
			expectError:   true,
		},
		{
			name:          "negative duration",
			date:          "2025-07-15",
			startTime:     "10:00",
			durationHours: -3,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.date, tt.startTime, tt.durationHours)

			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.date, w.Date)
			assert.Equal(t, tt.wantStart, w.StartMinutes)
			assert.Equal(t, tt.wantEnd, w.EndMinutes())
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	// 10:00 to 12:00
	w := Window{Date: "2025-07-15", StartMinutes: 600, DurationHours: 2}

	tests := []struct {
		name     string
		start    int
		end      int
		overlaps bool
	}{
		{"identical window", 600, 720, true},
		{"starts inside", 660, 780, true},
		{"ends inside", 540, 660, true},
		{"fully contains", 540, 780, true},
		{"fully contained", 630, 690, true},
		{"abuts at end", 720, 840, false},
		{"abuts at start", 480, 600, false},
		{"disjoint before", 420, 540, false},
		{"disjoint after", 780, 900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, w.Overlaps(tt.start, tt.end))
		})
	}
}

func TestClockConversions(t *testing.T) {
	min, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "24:00", FormatClock(1440))
}

func TestWindow_StartEnd(t *testing.T) {
	w, err := ParseWindow("2025-07-15", "10:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, "10:00", w.Start())
	assert.Equal(t, "12:00", w.End())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestStatus_DisplayLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusConfirmed.DisplayLabel())
	assert.Equal(t, "Upcoming", StatusPending.DisplayLabel())
	assert.Equal(t, "Completed", StatusCompleted.DisplayLabel())
	assert.Equal(t, "Cancelled", StatusCancelled.DisplayLabel())
	assert.Equal(t, "UNKNOWN", Status("UNKNOWN").DisplayLabel())
}
