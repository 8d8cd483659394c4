package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/internal/service"
)

type ResourceHandler struct {
	resourceService  *service.ResourceService
	dashboardService *service.DashboardService
}

func NewResourceHandler(resourceService *service.ResourceService, dashboardService *service.DashboardService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService, dashboardService: dashboardService}
}

// GET /resources
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resourceService.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	list := make([]gin.H, 0, len(resources))
	for i := range resources {
		r := &resources[i]

		// Assignments whose date range has not ended yet.
		titles := make([]string, 0)
		activeCount := 0
		for _, a := range r.Assignments {
			if a.EndDate != nil && a.EndDate.Before(today) {
				continue
			}
			activeCount++
			if a.Project != nil && len(titles) < 3 {
				titles = append(titles, a.Project.Title)
			}
		}

		item := gin.H{
			"id":                     r.ID,
			"user_id":                r.UserID,
			"capacity":               r.Capacity,
			"availability_status":    r.AvailabilityStatus,
			"notes":                  r.Notes,
			"created_at":             r.CreatedAt,
			"current_projects_count": activeCount,
			"current_projects_list":  strings.Join(titles, ", "),
		}
		if r.User != nil {
			item["name"] = r.User.Name
			item["email"] = r.User.Email
		}
		list = append(list, item)
	}
	Success(c, list)
}

// POST /resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=8"`
		Role     string  `json:"role" binding:"omitempty,oneof=admin project_manager resource"`
		Capacity float64 `json:"capacity" binding:"gte=0,lte=24"`
		Status   string  `json:"availability_status" binding:"omitempty,oneof=available assigned unavailable"`
		Notes    string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	resource, err := h.resourceService.Create(service.CreateResourceInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Capacity: req.Capacity,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, h.detail(resource))
}

// GET /resources/:id
func (h *ResourceHandler) GetDetail(c *gin.Context) {
	resource, err := h.resourceService.GetByID(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, h.detail(resource))
}

// PUT /resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"omitempty,min=8"`
		Role     string  `json:"role" binding:"required,oneof=admin project_manager resource"`
		Capacity float64 `json:"capacity" binding:"gte=0,lte=24"`
		Status   string  `json:"availability_status" binding:"required,oneof=available assigned unavailable"`
		Notes    string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	resource, err := h.resourceService.Update(parseID(c.Param("id")), service.UpdateResourceInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Capacity: req.Capacity,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, h.detail(resource))
}

// DELETE /resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.resourceService.Delete(parseID(c.Param("id"))); err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, nil)
}

// PUT /resources/:id/toggle-availability
func (h *ResourceHandler) ToggleAvailability(c *gin.Context) {
	resource, err := h.resourceService.ToggleAvailability(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dashboardService.Invalidate(c.Request.Context())
	Success(c, h.detail(resource))
}

func (h *ResourceHandler) detail(r *model.Resource) gin.H {
	projects := make([]gin.H, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		if a.Project == nil {
			continue
		}
		projects = append(projects, gin.H{
			"id":             a.Project.ID,
			"title":          a.Project.Title,
			"status":         a.Project.Status,
			"deadline":       formatDate(a.Project.Deadline),
			"assigned_hours": a.AssignedHours,
			"start_date":     a.StartDate.Format(dateLayout),
			"end_date":       formatDate(a.EndDate),
		})
	}

	item := gin.H{
		"id":                  r.ID,
		"user_id":             r.UserID,
		"capacity":            r.Capacity,
		"availability_status": r.AvailabilityStatus,
		"notes":               r.Notes,
		"created_at":          r.CreatedAt,
		"updated_at":          r.UpdatedAt,
		"projects":            projects,
	}
	if r.User != nil {
		item["name"] = r.User.Name
		item["email"] = r.User.Email
		item["role"] = r.User.Role
	}
	return item
}
