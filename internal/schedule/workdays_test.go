package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysNeeded(t *testing.T) {
	cases := []struct {
		name     string
		hours    float64
		capacity float64
		want     int
	}{
		{"exact multiple", 16, 8, 2},
		{"rounds up", 17, 8, 3},
		{"single day", 8, 8, 1},
		{"partial day rounds up", 1, 8, 1},
		{"zero hours", 0, 8, 0},
		{"negative hours", -4, 8, 0},
		{"zero capacity falls back to 7", 14, 0, 2},
		{"negative capacity falls back to 7", 14, -3, 2},
		{"fractional capacity", 10, 2.5, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysNeeded(tc.hours, tc.capacity); got != tc.want {
				t.Errorf("DaysNeeded(%v, %v) = %d, want %d", tc.hours, tc.capacity, got, tc.want)
			}
		})
	}
}

func TestDaysNeededZeroCapacityMatchesFallback(t *testing.T) {
	for hours := 1.0; hours <= 40; hours++ {
		if DaysNeeded(hours, 0) != DaysNeeded(hours, FallbackDailyCapacity) {
			t.Fatalf("capacity 0 diverged from fallback at %v hours", hours)
		}
	}
}

func TestProjectEndDate(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		days  int
		want  time.Time
	}{
		{"zero days returns start", date(2024, time.January, 1), 0, date(2024, time.January, 1)},
		{"monday one day", date(2024, time.January, 1), 1, date(2024, time.January, 1)},
		{"monday two days", date(2024, time.January, 1), 2, date(2024, time.January, 2)},
		{"friday one day", date(2024, time.January, 5), 1, date(2024, time.January, 5)},
		{"friday two days skips weekend", date(2024, time.January, 5), 2, date(2024, time.January, 8)},
		{"full week from monday", date(2024, time.January, 1), 5, date(2024, time.January, 5)},
		{"six days rolls into next week", date(2024, time.January, 1), 6, date(2024, time.January, 8)},
		{"start on saturday moves to monday", date(2024, time.January, 6), 1, date(2024, time.January, 8)},
		{"multi week skips every weekend", date(2024, time.January, 1), 10, date(2024, time.January, 12)},
		{"three weeks", date(2024, time.January, 1), 15, date(2024, time.January, 19)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectEndDate(tc.start, tc.days)
			if !got.Equal(tc.want) {
				t.Errorf("ProjectEndDate(%s, %d) = %s, want %s",
					tc.start.Format("2006-01-02"), tc.days,
					got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

// The span from start through the returned end date must contain exactly
// daysNeeded non-weekend days when start itself is a working day.
func TestProjectEndDateSpanContainsExactWorkingDays(t *testing.T) {
	start := date(2024, time.January, 1) // Monday
	for days := 1; days <= 25; days++ {
		end := ProjectEndDate(start, days)
		counted := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !IsWeekend(d) {
				counted++
			}
		}
		if counted != days {
			t.Errorf("span for daysNeeded=%d holds %d working days", days, counted)
		}
		if IsWeekend(end) {
			t.Errorf("end date %s for daysNeeded=%d is a weekend", end.Format("2006-01-02"), days)
		}
	}
}
