package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/internal/schedule"
	"github.com/jdbernardo16/project-manager/internal/service"
)

type ProjectHandler struct {
	projectService   *service.ProjectService
	dashboardService *service.DashboardService
}

func NewProjectHandler(projectService *service.ProjectService, dashboardService *service.DashboardService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, dashboardService: dashboardService}
}

const dateLayout = "2006-01-02"

type assignmentRequest struct {
	ResourceID    uint    `json:"resource_id" binding:"required"`
	AssignedHours float64 `json:"assigned_hours" binding:"required,gt=0"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date"`
}

type projectRequest struct {
	Title          string              `json:"title" binding:"required,max=255"`
	Description    string              `json:"description"`
	EstimateHours  float64             `json:"estimate_hours" binding:"required,gt=0"`
	HoursRemaining *float64            `json:"hours_remaining"`
	Deadline       string              `json:"deadline" binding:"required"`
	Status         string              `json:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
	Assignments    []assignmentRequest `json:"assignments"`
}

func (r *projectRequest) toInput() (service.ProjectInput, error) {
	deadline, err := time.Parse(dateLayout, r.Deadline)
	if err != nil {
		return service.ProjectInput{}, err
	}

	in := service.ProjectInput{
		Title:          r.Title,
		Description:    r.Description,
		EstimateHours:  r.EstimateHours,
		HoursRemaining: r.HoursRemaining,
		Deadline:       &deadline,
		Status:         r.Status,
	}
	for _, a := range r.Assignments {
		start, err := time.Parse(dateLayout, a.StartDate)
		if err != nil {
			return service.ProjectInput{}, err
		}
		input := service.AssignmentInput{
			ResourceID:    a.ResourceID,
			AssignedHours: a.AssignedHours,
			StartDate:     start,
		}
		if a.EndDate != "" {
			end, err := time.Parse(dateLayout, a.EndDate)
			if err != nil {
				return service.ProjectInput{}, err
			}
			if end.Before(start) {
				return service.ProjectInput{}, errEndBeforeStart
			}
			input.EndDate = &end
		}
		in.Assignments = append(in.Assignments, input)
	}
	return in, nil
}

var errEndBeforeStart = errors.New("end_date must not be before start_date")

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	now := time.Now()
	list := make([]gin.H, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		row := schedule.SummarizeProject(p, now)
		list = append(list, gin.H{
			"id":                 p.ID,
			"title":              p.Title,
			"description":        p.Description,
			"estimate_hours":     p.EstimateHours,
			"deadline":           formatDate(p.Deadline),
			"status":             p.Status,
			"created_at":         p.CreatedAt,
			"resources_count":    row.ResourceCount,
			"progress":           row.Progress,
			"is_overdue":         row.IsOverdue,
			"deadline_proximity": row.DeadlineProximity,
			"assigned_resources": row.AssignedResources,
		})
	}
	Success(c, list)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		BadRequest(c, 40002, "invalid date: "+err.Error())
		return
	}

	project, err := h.projectService.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, h.detail(project))
}

// GET /projects/:id
func (h *ProjectHandler) GetDetail(c *gin.Context) {
	project, err := h.projectService.GetByID(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, h.detail(project))
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		BadRequest(c, 40002, "invalid date: "+err.Error())
		return
	}

	project, err := h.projectService.Update(parseID(c.Param("id")), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, h.detail(project))
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(parseID(c.Param("id"))); err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, nil)
}

// GET /projects/:id/calendar
func (h *ProjectHandler) Calendar(c *gin.Context) {
	project, err := h.projectService.GetByID(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sched := schedule.Project(project.ID, schedule.SnapshotAssignments(project))

	legend := make([]gin.H, 0, len(project.Assignments))
	for i, a := range project.Assignments {
		item := gin.H{
			"id":             a.ResourceID,
			"color":          schedule.ResourceColor(i),
			"assigned_hours": a.AssignedHours,
			"start_date":     a.StartDate.Format(dateLayout),
			"end_date":       formatDate(a.EndDate),
		}
		if a.Resource != nil && a.Resource.User != nil {
			item["name"] = a.Resource.User.Name
		}
		legend = append(legend, item)
	}

	Success(c, gin.H{
		"project": gin.H{
			"id":       project.ID,
			"title":    project.Title,
			"deadline": formatDate(project.Deadline),
		},
		"project_resources": legend,
		"calendar_events":   sched.Events,
	})
}

// GET /projects/available-resources
func (h *ProjectHandler) AvailableResources(c *gin.Context) {
	projectID := parseID(c.Query("project_id"))
	resources, err := h.projectService.AvailableResources(projectID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(resources))
	for i := range resources {
		r := &resources[i]
		item := gin.H{
			"id":                  r.ID,
			"capacity":            r.Capacity,
			"availability_status": r.AvailabilityStatus,
		}
		if r.User != nil {
			item["name"] = r.User.Name
		}
		list = append(list, item)
	}
	Success(c, list)
}

func (h *ProjectHandler) detail(p *model.Project) gin.H {
	now := time.Now()
	row := schedule.SummarizeProject(p, now)

	assignments := make([]gin.H, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		item := gin.H{
			"id":             a.ResourceID,
			"assigned_hours": a.AssignedHours,
			"start_date":     a.StartDate.Format(dateLayout),
			"end_date":       formatDate(a.EndDate),
		}
		if a.Resource != nil {
			item["capacity"] = a.Resource.Capacity
			if a.Resource.User != nil {
				item["name"] = a.Resource.User.Name
			}
		}
		assignments = append(assignments, item)
	}

	return gin.H{
		"id":                  p.ID,
		"title":               p.Title,
		"description":         p.Description,
		"estimate_hours":      p.EstimateHours,
		"hours_remaining":     p.HoursRemaining,
		"deadline":            formatDate(p.Deadline),
		"status":              p.Status,
		"progress":            row.Progress,
		"is_overdue":          row.IsOverdue,
		"deadline_proximity":  row.DeadlineProximity,
		"estimated_end_date":  formatDate(row.EstimatedEndDate),
		"earliest_start_date": formatDate(row.EarliestStartDate),
		"created_at":          p.CreatedAt,
		"updated_at":          p.UpdatedAt,
		"resources":           assignments,
	}
}

func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}
