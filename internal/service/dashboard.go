package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/internal/schedule"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const dashboardCacheKey = "dashboard:view"

type DashboardService struct {
	db           *gorm.DB
	rdb          *redis.Client
	projectLimit int
	cacheTTL     time.Duration
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client, projectLimit, cacheTTLSeconds int) *DashboardService {
	return &DashboardService{
		db:           db,
		rdb:          rdb,
		projectLimit: projectLimit,
		cacheTTL:     time.Duration(cacheTTLSeconds) * time.Second,
	}
}

type DashboardStatistics struct {
	TotalProjects      int64 `json:"total_projects"`
	AvailableResources int64 `json:"available_resources"`
	ProjectsDueSoon    int64 `json:"projects_due_soon"`
}

type ResourceRow struct {
	ID                  uint    `json:"id"`
	UserID              uint    `json:"user_id"`
	Name                string  `json:"name"`
	Capacity            float64 `json:"capacity"`
	AvailabilityStatus  string  `json:"availability_status"`
	CurrentProjectTitle string  `json:"current_project_title"`
}

type DashboardView struct {
	Statistics       DashboardStatistics       `json:"statistics"`
	OngoingProjects  []schedule.ProjectSummary `json:"ongoing_projects"`
	UpcomingProjects []schedule.ProjectSummary `json:"upcoming_projects"`
	Resources        []ResourceRow             `json:"resources"`
	Calendar         []schedule.ProjectSpan    `json:"calendar"`
}

// Get assembles the dashboard view-model, serving a short-lived cached copy
// when one exists. The cache is best effort: redis failures are logged and
// the view is computed from the database.
func (s *DashboardService) Get(ctx context.Context) (*DashboardView, error) {
	if s.rdb != nil && s.cacheTTL > 0 {
		if raw, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached DashboardView
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("dashboard cache read: %v", err)
		}
	}

	view, err := s.build(time.Now())
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(view); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Printf("dashboard cache write: %v", err)
			}
		}
	}
	return view, nil
}

// Invalidate drops the cached view. Called after any project, resource or
// assignment write.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		log.Printf("dashboard cache invalidate: %v", err)
	}
}

func (s *DashboardService) build(now time.Time) (*DashboardView, error) {
	view := &DashboardView{}

	// Ongoing nearest deadline first, upcoming soonest deadline first.
	// Display code depends on this ordering.
	var ongoing []model.Project
	err := s.db.Preload("Assignments.Resource.User").
		Where("status = ?", model.ProjectStatusOngoing).
		Order("deadline desc").Limit(s.projectLimit).Find(&ongoing).Error
	if err != nil {
		return nil, err
	}
	view.OngoingProjects = schedule.SummarizeProjects(ongoing, now)

	var upcoming []model.Project
	err = s.db.Preload("Assignments.Resource.User").
		Where("status = ?", model.ProjectStatusUpcoming).
		Order("deadline asc").Limit(s.projectLimit).Find(&upcoming).Error
	if err != nil {
		return nil, err
	}
	view.UpcomingProjects = schedule.SummarizeProjects(upcoming, now)

	if err := s.db.Model(&model.Project{}).Count(&view.Statistics.TotalProjects).Error; err != nil {
		return nil, err
	}
	err = s.db.Model(&model.Resource{}).
		Where("availability_status = ?", model.AvailabilityAvailable).
		Count(&view.Statistics.AvailableResources).Error
	if err != nil {
		return nil, err
	}
	weekOut := now.UTC().AddDate(0, 0, 7).Format("2006-01-02")
	err = s.db.Model(&model.Project{}).
		Where("status != ?", model.ProjectStatusCompleted).
		Where("deadline IS NOT NULL AND deadline <= ?", weekOut).
		Count(&view.Statistics.ProjectsDueSoon).Error
	if err != nil {
		return nil, err
	}

	var resources []model.Resource
	err = s.db.Preload("User").Preload("Assignments.Project").
		Order("availability_status").Find(&resources).Error
	if err != nil {
		return nil, err
	}
	view.Resources = make([]ResourceRow, 0, len(resources))
	for i := range resources {
		view.Resources = append(view.Resources, resourceRow(&resources[i], now))
	}

	var withDeadline []model.Project
	err = s.db.Preload("Assignments").
		Where("deadline IS NOT NULL").Order("deadline asc").Find(&withDeadline).Error
	if err != nil {
		return nil, err
	}
	view.Calendar = schedule.ProjectSpans(withDeadline)

	return view, nil
}

// resourceRow picks the resource's currently running assignment (started,
// not yet ended) to label what it is working on right now.
func resourceRow(r *model.Resource, now time.Time) ResourceRow {
	row := ResourceRow{
		ID:                  r.ID,
		UserID:              r.UserID,
		Capacity:            r.Capacity,
		AvailabilityStatus:  r.AvailabilityStatus,
		CurrentProjectTitle: "None",
	}
	if r.User != nil {
		row.Name = r.User.Name
	}

	var current *model.Assignment
	for i := range r.Assignments {
		a := &r.Assignments[i]
		if a.StartDate.After(now) {
			continue
		}
		if a.EndDate != nil && a.EndDate.Before(now.Truncate(24*time.Hour)) {
			continue
		}
		if current == nil || a.StartDate.Before(current.StartDate) {
			current = a
		}
	}
	if current != nil && current.Project != nil {
		row.CurrentProjectTitle = current.Project.Title
	}
	return row
}
