package schedule

import (
	"fmt"
	"time"
)

// resourceColors is the fixed event palette. Colors are assigned round-robin
// by a resource's position in the project's assignment list, so they are
// stable within one rendering call but may shift if the list is reordered.
var resourceColors = [...]string{
	"#3498db", "#e74c3c", "#2ecc71", "#f1c40f", "#9b59b6", "#1abc9c", "#e67e22",
}

// ResourceColor returns the palette color for the index-th resource of a
// project.
func ResourceColor(index int) string {
	return resourceColors[index%len(resourceColors)]
}

// AssignmentSnapshot is one resource's allocation on a project, as the
// projector needs it: who, how many hours, at what daily capacity, and over
// which date range. EndDate nil means the assignment is open-ended.
type AssignmentSnapshot struct {
	ResourceID    uint
	ResourceName  string
	Capacity      float64
	AssignedHours float64
	StartDate     time.Time
	EndDate       *time.Time
}

// CalendarEvent is one generated all-day entry: a resource working a
// project on one working day. Events are derived on every render, never
// persisted.
type CalendarEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ResourceID uint   `json:"resourceId"`
	Color      string `json:"color"`
	AllDay     bool   `json:"allDay"`
}

// Schedule is the projector's output for one project.
type Schedule struct {
	EstimatedEndDate  *time.Time
	EarliestStartDate *time.Time
	Events            []CalendarEvent
}

// Project derives a project's schedule from its assignments: per-day
// calendar events for each resource, the estimated completion date (the
// last resource to finish), and the earliest assignment start.
//
// Each assignment is walked forward from its start date, skipping weekends
// outright. An explicit end date truncates the walk even if fewer working
// days than needed were scheduled; the estimated end date deliberately
// ignores that truncation and reflects the full workload. Assignments with
// no workload contribute nothing.
func Project(projectID uint, assignments []AssignmentSnapshot) Schedule {
	var out Schedule
	for i, a := range assignments {
		days := DaysNeeded(a.AssignedHours, a.Capacity)

		if out.EarliestStartDate == nil || a.StartDate.Before(*out.EarliestStartDate) {
			start := a.StartDate
			out.EarliestStartDate = &start
		}
		if days == 0 {
			continue
		}

		end := ProjectEndDate(a.StartDate, days)
		if out.EstimatedEndDate == nil || end.After(*out.EstimatedEndDate) {
			out.EstimatedEndDate = &end
		}

		color := ResourceColor(i)
		day := a.StartDate
		scheduled := 0
		for scheduled < days {
			if IsWeekend(day) {
				day = day.AddDate(0, 0, 1)
				continue
			}
			if a.EndDate != nil && day.After(*a.EndDate) {
				break
			}
			out.Events = append(out.Events, CalendarEvent{
				ID:         fmt.Sprintf("generated-%d-%d-%s", projectID, a.ResourceID, day.Format("20060102")),
				Title:      a.ResourceName,
				Start:      day.Format("2006-01-02"),
				End:        day.Format("2006-01-02"),
				ResourceID: a.ResourceID,
				Color:      color,
				AllDay:     true,
			})
			scheduled++
			day = day.AddDate(0, 0, 1)
		}
	}
	return out
}
