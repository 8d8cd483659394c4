// Package schedule derives dashboard and calendar view-models from stored
// project, resource and assignment records. Everything here is pure
// computation over immutable snapshots; persistence and HTTP belong to the
// service and handler layers.
package schedule

import (
	"math"
	"time"
)

// FallbackDailyCapacity substitutes for a missing or zero resource capacity
// so hour-to-day conversion never divides by zero.
const FallbackDailyCapacity = 7.0

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysNeeded converts a workload in hours into whole working days at the
// given daily capacity. A capacity of zero or less uses
// FallbackDailyCapacity; a workload of zero or less needs no days.
func DaysNeeded(hours, dailyCapacity float64) int {
	if hours <= 0 {
		return 0
	}
	capacity := dailyCapacity
	if capacity <= 0 {
		capacity = FallbackDailyCapacity
	}
	return int(math.Ceil(hours / capacity))
}

// ProjectEndDate walks forward from start, counting only non-weekend days
// (start itself included when it is a working day), and returns the date on
// which the daysNeeded-th working day falls. With daysNeeded of zero the
// start date is returned unchanged.
func ProjectEndDate(start time.Time, daysNeeded int) time.Time {
	if daysNeeded <= 0 {
		return start
	}
	day := start
	counted := 0
	for {
		if !IsWeekend(day) {
			counted++
			if counted == daysNeeded {
				return day
			}
		}
		day = day.AddDate(0, 0, 1)
	}
}
