package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestDaysTo(t *testing.T) {
	testCases := []struct {
		name     string
		from, to Date
		want     int
	}{
		{"same day", New(2026, 1, 5), New(2026, 1, 5), 0},
		{"next day", New(2026, 1, 5), New(2026, 1, 6), 1},
		{"across month", New(2026, 1, 30), New(2026, 2, 2), 3},
		{"across leap day", New(2024, 2, 28), New(2024, 3, 1), 2},
		{"backwards", New(2026, 1, 6), New(2026, 1, 5), -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.DaysTo(tc.to); got != tc.want {
				t.Errorf("DaysTo(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	d := New(2026, time.August, 19) // a Wednesday

	testCases := []struct {
		name       string
		period     Period
		start, end Date
	}{
		{"daily", Daily, d, d},
		{"weekly", Weekly, New(2026, 8, 17), New(2026, 8, 23)},
		{"monthly", Monthly, New(2026, 8, 1), New(2026, 8, 31)},
		{"quarterly", Quarterly, New(2026, 7, 1), New(2026, 9, 30)},
		{"yearly", Yearly, New(2026, 1, 1), New(2026, 12, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.StartOf(tc.period); got != tc.start {
				t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.start)
			}
			if got := d.EndOf(tc.period); got != tc.end {
				t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.end)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		str       string
		want      Date
		expectErr bool
	}{
		{"2026-01-02", New(2026, 1, 2), false},
		{"2026-1-2", New(2026, 1, 2), false},
		{"02-01-2026", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			got, err := Parse(tc.str)
			if (err != nil) != tc.expectErr {
				t.Fatalf("Parse(%q) error = %v, want error: %v", tc.str, err, tc.expectErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.str, got, tc.want)
			}
		})
	}
}
