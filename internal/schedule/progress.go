package schedule

import (
	"math"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
)

// Proximity classifies how close a project deadline is, for dashboard
// highlighting. It is a display hint and deliberately overlaps with the
// overdue flag: a past deadline on an unfinished project reads as near.
type Proximity string

const (
	ProximityNone        Proximity = "none"
	ProximityApproaching Proximity = "approaching"
	ProximityNear        Proximity = "near"
)

// ProjectSnapshot carries the project fields the evaluators need, decoupled
// from the GORM record.
type ProjectSnapshot struct {
	EstimateHours  float64
	HoursRemaining *float64
	Deadline       *time.Time
	Status         string
}

// SnapshotProject extracts an evaluation snapshot from a stored project.
func SnapshotProject(p *model.Project) ProjectSnapshot {
	return ProjectSnapshot{
		EstimateHours:  p.EstimateHours,
		HoursRemaining: p.HoursRemaining,
		Deadline:       p.Deadline,
		Status:         p.Status,
	}
}

// Progress returns the completion percentage in [0, 100], rounded to two
// decimal places. Completed projects are always 100 regardless of their
// hour bookkeeping; a non-positive estimate yields 0. Missing
// hours_remaining counts as no progress, and out-of-range values are
// clamped rather than rejected (the estimate may have been lowered after
// hours were logged).
func Progress(p ProjectSnapshot) float64 {
	if p.Status == model.ProjectStatusCompleted {
		return 100
	}
	if p.EstimateHours <= 0 {
		return 0
	}
	remaining := p.EstimateHours
	if p.HoursRemaining != nil {
		remaining = *p.HoursRemaining
	}
	if remaining > p.EstimateHours {
		remaining = p.EstimateHours
	}
	if remaining < 0 {
		remaining = 0
	}
	pct := (p.EstimateHours - remaining) / p.EstimateHours * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}

// IsOverdue reports whether the deadline has passed on a project that is
// not completed. Projects without a deadline are never overdue.
func IsOverdue(p ProjectSnapshot, now time.Time) bool {
	if p.Deadline == nil || p.Status == model.ProjectStatusCompleted {
		return false
	}
	return dateOf(*p.Deadline).Before(dateOf(now))
}

// DeadlineProximity buckets the remaining whole days until the deadline:
// near within 3 days (or already past), approaching within 7, none beyond
// that. Completed projects and projects without a deadline are none.
func DeadlineProximity(p ProjectSnapshot, now time.Time) Proximity {
	if p.Deadline == nil || p.Status == model.ProjectStatusCompleted {
		return ProximityNone
	}
	today := dateOf(now)
	deadline := dateOf(*p.Deadline)
	if deadline.Before(today) {
		return ProximityNear
	}
	days := int(deadline.Sub(today).Hours() / 24)
	switch {
	case days <= 3:
		return ProximityNear
	case days <= 7:
		return ProximityApproaching
	default:
		return ProximityNone
	}
}

// dateOf truncates a timestamp to its calendar date in UTC. All deadline
// and scheduling comparisons work on whole days.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
