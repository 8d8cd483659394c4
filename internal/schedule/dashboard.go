package schedule

import (
	"strings"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
)

// ProjectSummary is one dashboard or list row: stored fields plus every
// derived value the views need.
type ProjectSummary struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	Deadline          *time.Time `json:"deadline"`
	Progress          float64    `json:"progress"`
	IsOverdue         bool       `json:"is_overdue"`
	DeadlineProximity Proximity  `json:"deadline_proximity"`
	EstimatedEndDate  *time.Time `json:"estimated_end_date"`
	EarliestStartDate *time.Time `json:"earliest_start_date"`
	ResourceCount     int        `json:"resources_count"`
	AssignedResources string     `json:"assigned_resources"`
}

// ProjectSpan places one project on the macro calendar: its earliest
// assignment start against its deadline. Only projects with a deadline
// appear there.
type ProjectSpan struct {
	ProjectID         uint       `json:"project_id"`
	Title             string     `json:"title"`
	EarliestStartDate *time.Time `json:"earliest_start_date"`
	Deadline          time.Time  `json:"deadline"`
}

// SnapshotAssignments flattens a project's assignment records (with their
// resources and users preloaded) into projector inputs, preserving the
// stored order that drives color assignment.
func SnapshotAssignments(p *model.Project) []AssignmentSnapshot {
	snaps := make([]AssignmentSnapshot, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		snap := AssignmentSnapshot{
			ResourceID:    a.ResourceID,
			AssignedHours: a.AssignedHours,
			StartDate:     a.StartDate,
			EndDate:       a.EndDate,
		}
		if a.Resource != nil {
			snap.Capacity = a.Resource.Capacity
			if a.Resource.User != nil {
				snap.ResourceName = a.Resource.User.Name
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

// SummarizeProject combines the progress evaluators and the schedule
// projector into one row for the given project.
func SummarizeProject(p *model.Project, now time.Time) ProjectSummary {
	snap := SnapshotProject(p)
	sched := Project(p.ID, SnapshotAssignments(p))

	names := make([]string, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		if a.Resource != nil && a.Resource.User != nil {
			names = append(names, a.Resource.User.Name)
		}
	}

	return ProjectSummary{
		ID:                p.ID,
		Title:             p.Title,
		Status:            p.Status,
		Deadline:          p.Deadline,
		Progress:          Progress(snap),
		IsOverdue:         IsOverdue(snap, now),
		DeadlineProximity: DeadlineProximity(snap, now),
		EstimatedEndDate:  sched.EstimatedEndDate,
		EarliestStartDate: sched.EarliestStartDate,
		ResourceCount:     len(p.Assignments),
		AssignedResources: strings.Join(names, ", "),
	}
}

// SummarizeProjects maps SummarizeProject over a slice, preserving order
// (the dashboard's ongoing/upcoming ordering is part of the contract).
func SummarizeProjects(projects []model.Project, now time.Time) []ProjectSummary {
	rows := make([]ProjectSummary, 0, len(projects))
	for i := range projects {
		rows = append(rows, SummarizeProject(&projects[i], now))
	}
	return rows
}

// ProjectSpans builds the macro calendar projection from every project that
// carries a deadline.
func ProjectSpans(projects []model.Project) []ProjectSpan {
	spans := make([]ProjectSpan, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		if p.Deadline == nil {
			continue
		}
		sched := Project(p.ID, SnapshotAssignments(p))
		spans = append(spans, ProjectSpan{
			ProjectID:         p.ID,
			Title:             p.Title,
			EarliestStartDate: sched.EarliestStartDate,
			Deadline:          *p.Deadline,
		})
	}
	return spans
}
