package schedule

import (
	"testing"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
)

func testProject() *model.Project {
	deadline := date(2024, time.January, 10)
	return &model.Project{
		ID:             21,
		Title:          "Website relaunch",
		EstimateHours:  100,
		HoursRemaining: fptr(25),
		Deadline:       &deadline,
		Status:         model.ProjectStatusOngoing,
		Assignments: []model.Assignment{
			{
				ResourceID:    3,
				AssignedHours: 16,
				StartDate:     date(2024, time.January, 1),
				Resource: &model.Resource{
					ID:       3,
					Capacity: 8,
					User:     &model.User{Name: "Ana"},
				},
			},
			{
				ResourceID:    4,
				AssignedHours: 8,
				StartDate:     date(2024, time.January, 2),
				Resource: &model.Resource{
					ID:       4,
					Capacity: 8,
					User:     &model.User{Name: "Ben"},
				},
			},
		},
	}
}

func TestSummarizeProject(t *testing.T) {
	now := date(2024, time.January, 4)
	row := SummarizeProject(testProject(), now)

	if row.ID != 21 || row.Title != "Website relaunch" {
		t.Errorf("identity fields wrong: %+v", row)
	}
	if row.Progress != 75 {
		t.Errorf("progress = %v, want 75", row.Progress)
	}
	if row.IsOverdue {
		t.Errorf("project is not overdue on %s", now.Format("2006-01-02"))
	}
	if row.DeadlineProximity != ProximityApproaching {
		t.Errorf("proximity = %q, want approaching", row.DeadlineProximity)
	}
	if row.ResourceCount != 2 {
		t.Errorf("resource count = %d, want 2", row.ResourceCount)
	}
	if row.AssignedResources != "Ana, Ben" {
		t.Errorf("assigned resources = %q", row.AssignedResources)
	}
	if row.EstimatedEndDate == nil || !row.EstimatedEndDate.Equal(date(2024, time.January, 2)) {
		t.Errorf("estimated end = %v, want 2024-01-02", row.EstimatedEndDate)
	}
	if row.EarliestStartDate == nil || !row.EarliestStartDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("earliest start = %v, want 2024-01-01", row.EarliestStartDate)
	}
}

func TestSummarizeProjectsPreservesOrder(t *testing.T) {
	a := testProject()
	b := testProject()
	b.ID = 22
	b.Title = "Mobile app"

	rows := SummarizeProjects([]model.Project{*a, *b}, date(2024, time.January, 4))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != 21 || rows[1].ID != 22 {
		t.Errorf("order not preserved: %d, %d", rows[0].ID, rows[1].ID)
	}
}

func TestProjectSpans(t *testing.T) {
	withDeadline := testProject()
	noDeadline := testProject()
	noDeadline.ID = 30
	noDeadline.Deadline = nil

	spans := ProjectSpans([]model.Project{*withDeadline, *noDeadline})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1 (deadline-less projects excluded)", len(spans))
	}
	if spans[0].ProjectID != 21 {
		t.Errorf("span project = %d, want 21", spans[0].ProjectID)
	}
	if !spans[0].Deadline.Equal(date(2024, time.January, 10)) {
		t.Errorf("span deadline = %s", spans[0].Deadline.Format("2006-01-02"))
	}
	if spans[0].EarliestStartDate == nil || !spans[0].EarliestStartDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("span earliest start = %v", spans[0].EarliestStartDate)
	}
}

func TestSnapshotAssignmentsHandlesMissingPreloads(t *testing.T) {
	p := &model.Project{
		ID: 5,
		Assignments: []model.Assignment{
			{ResourceID: 1, AssignedHours: 8, StartDate: date(2024, time.January, 1)},
		},
	}
	snaps := SnapshotAssignments(p)
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps))
	}
	if snaps[0].Capacity != 0 || snaps[0].ResourceName != "" {
		t.Errorf("missing preload should leave zero values: %+v", snaps[0])
	}
	// The projector then falls back to the default capacity.
	sched := Project(5, snaps)
	if len(sched.Events) != 2 {
		t.Errorf("8h at fallback capacity should need 2 days, got %d events", len(sched.Events))
	}
}
