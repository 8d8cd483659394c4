package schedule

import (
	"testing"
	"time"
)

func TestProjectSingleAssignmentWeek(t *testing.T) {
	// 40 hours at 8/day starting a Monday fills exactly Monday..Friday.
	sched := Project(1, []AssignmentSnapshot{{
		ResourceID:    9,
		ResourceName:  "Ana",
		Capacity:      8,
		AssignedHours: 40,
		StartDate:     date(2024, time.January, 1),
	}})

	if len(sched.Events) != 5 {
		t.Fatalf("got %d events, want 5", len(sched.Events))
	}
	wantDays := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, ev := range sched.Events {
		if ev.Start != wantDays[i] {
			t.Errorf("event %d on %s, want %s", i, ev.Start, wantDays[i])
		}
		if ev.Start != ev.End {
			t.Errorf("event %d spans %s..%s, want single day", i, ev.Start, ev.End)
		}
		day, _ := time.Parse("2006-01-02", ev.Start)
		if IsWeekend(day) {
			t.Errorf("event %d lands on a weekend (%s)", i, ev.Start)
		}
		if ev.Title != "Ana" || ev.ResourceID != 9 || !ev.AllDay {
			t.Errorf("event %d carries wrong metadata: %+v", i, ev)
		}
	}
	if sched.EstimatedEndDate == nil || !sched.EstimatedEndDate.Equal(date(2024, time.January, 5)) {
		t.Errorf("estimated end = %v, want 2024-01-05", sched.EstimatedEndDate)
	}
	if sched.EarliestStartDate == nil || !sched.EarliestStartDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("earliest start = %v, want 2024-01-01", sched.EarliestStartDate)
	}
}

func TestProjectTwoDayAssignmentFromMonday(t *testing.T) {
	sched := Project(2, []AssignmentSnapshot{{
		ResourceID: 1, Capacity: 8, AssignedHours: 16,
		StartDate: date(2024, time.January, 1),
	}})
	if len(sched.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(sched.Events))
	}
	if sched.Events[0].Start != "2024-01-01" || sched.Events[1].Start != "2024-01-02" {
		t.Errorf("events on %s and %s, want 2024-01-01 and 2024-01-02",
			sched.Events[0].Start, sched.Events[1].Start)
	}
	if !sched.EstimatedEndDate.Equal(date(2024, time.January, 2)) {
		t.Errorf("estimated end = %s, want 2024-01-02", sched.EstimatedEndDate.Format("2006-01-02"))
	}
}

func TestProjectFridayAssignments(t *testing.T) {
	friday := date(2024, time.January, 5)

	one := Project(3, []AssignmentSnapshot{{ResourceID: 1, Capacity: 8, AssignedHours: 8, StartDate: friday}})
	if len(one.Events) != 1 || one.Events[0].Start != "2024-01-05" {
		t.Fatalf("single-day friday assignment: %+v", one.Events)
	}

	two := Project(3, []AssignmentSnapshot{{ResourceID: 1, Capacity: 8, AssignedHours: 16, StartDate: friday}})
	if len(two.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(two.Events))
	}
	if two.Events[0].Start != "2024-01-05" || two.Events[1].Start != "2024-01-08" {
		t.Errorf("events on %s and %s, want friday and monday",
			two.Events[0].Start, two.Events[1].Start)
	}
	if !two.EstimatedEndDate.Equal(date(2024, time.January, 8)) {
		t.Errorf("estimated end = %s, want 2024-01-08", two.EstimatedEndDate.Format("2006-01-02"))
	}
}

func TestProjectEndDateTruncation(t *testing.T) {
	// Ten working days of load but the assignment ends Wednesday: only
	// three events come out, while the estimate still reflects the load.
	end := date(2024, time.January, 3)
	sched := Project(4, []AssignmentSnapshot{{
		ResourceID: 1, Capacity: 8, AssignedHours: 80,
		StartDate: date(2024, time.January, 1),
		EndDate:   &end,
	}})
	if len(sched.Events) != 3 {
		t.Fatalf("got %d events, want 3", len(sched.Events))
	}
	if !sched.EstimatedEndDate.Equal(date(2024, time.January, 12)) {
		t.Errorf("estimated end = %s, want 2024-01-12 (untruncated)",
			sched.EstimatedEndDate.Format("2006-01-02"))
	}
}

func TestProjectZeroHoursAssignment(t *testing.T) {
	sched := Project(5, []AssignmentSnapshot{
		{ResourceID: 1, Capacity: 8, AssignedHours: 0, StartDate: date(2024, time.February, 26)},
		{ResourceID: 2, Capacity: 8, AssignedHours: 8, StartDate: date(2024, time.January, 1)},
	})
	if len(sched.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(sched.Events))
	}
	// The idle assignment must not drag the estimate forward, but its
	// start still counts toward the earliest start.
	if !sched.EstimatedEndDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("estimated end = %s, want 2024-01-01", sched.EstimatedEndDate.Format("2006-01-02"))
	}
	if !sched.EarliestStartDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("earliest start = %s, want 2024-01-01", sched.EarliestStartDate.Format("2006-01-02"))
	}
}

func TestProjectZeroCapacityUsesFallback(t *testing.T) {
	start := date(2024, time.January, 1)
	zero := Project(6, []AssignmentSnapshot{{ResourceID: 1, Capacity: 0, AssignedHours: 14, StartDate: start}})
	fallback := Project(6, []AssignmentSnapshot{{ResourceID: 1, Capacity: FallbackDailyCapacity, AssignedHours: 14, StartDate: start}})
	if len(zero.Events) != len(fallback.Events) {
		t.Fatalf("capacity 0 scheduled %d days, fallback %d", len(zero.Events), len(fallback.Events))
	}
	if !zero.EstimatedEndDate.Equal(*fallback.EstimatedEndDate) {
		t.Errorf("capacity 0 end %s diverges from fallback end %s",
			zero.EstimatedEndDate.Format("2006-01-02"), fallback.EstimatedEndDate.Format("2006-01-02"))
	}
}

func TestProjectLatestResourceDeterminesEnd(t *testing.T) {
	sched := Project(7, []AssignmentSnapshot{
		{ResourceID: 1, Capacity: 8, AssignedHours: 8, StartDate: date(2024, time.January, 1)},
		{ResourceID: 2, Capacity: 4, AssignedHours: 16, StartDate: date(2024, time.January, 3)},
	})
	// Resource 2 needs 4 working days from Wednesday: Wed, Thu, Fri, Mon.
	if !sched.EstimatedEndDate.Equal(date(2024, time.January, 8)) {
		t.Errorf("estimated end = %s, want 2024-01-08", sched.EstimatedEndDate.Format("2006-01-02"))
	}
	if !sched.EarliestStartDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("earliest start = %s, want 2024-01-01", sched.EarliestStartDate.Format("2006-01-02"))
	}
}

func TestProjectNoAssignments(t *testing.T) {
	sched := Project(8, nil)
	if sched.EstimatedEndDate != nil || sched.EarliestStartDate != nil || len(sched.Events) != 0 {
		t.Errorf("empty project produced %+v", sched)
	}
}

func TestResourceColorRoundRobin(t *testing.T) {
	if ResourceColor(0) != "#3498db" {
		t.Errorf("color 0 = %s", ResourceColor(0))
	}
	if ResourceColor(7) != ResourceColor(0) {
		t.Errorf("palette does not wrap at 7: %s vs %s", ResourceColor(7), ResourceColor(0))
	}
	seen := map[string]bool{}
	for i := 0; i < 7; i++ {
		seen[ResourceColor(i)] = true
	}
	if len(seen) != 7 {
		t.Errorf("palette has %d distinct colors, want 7", len(seen))
	}
}

func TestProjectEventColorsFollowListPosition(t *testing.T) {
	start := date(2024, time.January, 1)
	assignments := make([]AssignmentSnapshot, 9)
	for i := range assignments {
		assignments[i] = AssignmentSnapshot{ResourceID: uint(i + 1), Capacity: 8, AssignedHours: 8, StartDate: start}
	}
	sched := Project(9, assignments)
	if len(sched.Events) != 9 {
		t.Fatalf("got %d events, want 9", len(sched.Events))
	}
	for i, ev := range sched.Events {
		if ev.Color != ResourceColor(i) {
			t.Errorf("event %d color %s, want %s", i, ev.Color, ResourceColor(i))
		}
	}
	if sched.Events[7].Color != sched.Events[0].Color {
		t.Errorf("eighth resource should reuse the first color")
	}
}

func TestProjectEventIDFormat(t *testing.T) {
	sched := Project(12, []AssignmentSnapshot{{ResourceID: 34, Capacity: 8, AssignedHours: 8, StartDate: date(2024, time.January, 1)}})
	if len(sched.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(sched.Events))
	}
	if sched.Events[0].ID != "generated-12-34-20240101" {
		t.Errorf("event id = %q", sched.Events[0].ID)
	}
}
