package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// AssignmentInput is one row of the full-replace assignment set a project
// is saved with. Assignments absent from the set are removed, new ones
// added, existing ones updated in place.
type AssignmentInput struct {
	ResourceID    uint
	AssignedHours float64
	StartDate     time.Time
	EndDate       *time.Time
}

type ProjectInput struct {
	Title          string
	Description    string
	EstimateHours  float64
	HoursRemaining *float64
	Deadline       *time.Time
	Status         string
	Assignments    []AssignmentInput
}

func (s *ProjectService) List() ([]model.Project, error) {
	var projects []model.Project
	err := s.db.Preload("Assignments.Resource.User").
		Order("created_at desc").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	err := s.db.Preload("Assignments.Resource.User").First(&project, id).Error
	if err != nil {
		return nil, fmt.Errorf("40402:project not found")
	}
	return &project, nil
}

func (s *ProjectService) Create(in ProjectInput) (*model.Project, error) {
	status := in.Status
	if status == "" {
		status = model.ProjectStatusUpcoming
	}
	hoursRemaining := in.HoursRemaining
	if hoursRemaining == nil {
		v := in.EstimateHours
		hoursRemaining = &v
	}

	project := &model.Project{
		Title:          in.Title,
		Description:    in.Description,
		EstimateHours:  in.EstimateHours,
		HoursRemaining: hoursRemaining,
		Deadline:       in.Deadline,
		Status:         status,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return s.syncAssignments(tx, project.ID, in.Assignments)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(project.ID)
}

func (s *ProjectService) Update(id uint, in ProjectInput) (*model.Project, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":           in.Title,
			"description":     in.Description,
			"estimate_hours":  in.EstimateHours,
			"hours_remaining": in.HoursRemaining,
			"deadline":        in.Deadline,
			"status":          in.Status,
		}
		if err := tx.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return s.syncAssignments(tx, id, in.Assignments)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete detaches every assignment before removing the project, then
// releases the freed resources.
func (s *ProjectService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var resourceIDs []uint
		if err := tx.Model(&model.Assignment{}).Where("project_id = ?", id).
			Pluck("resource_id", &resourceIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Project{}, id).Error; err != nil {
			return err
		}
		return reconcileAvailability(tx, resourceIDs)
	})
}

// syncAssignments replaces a project's assignment set wholesale and
// reconciles the availability of every resource touched on either side of
// the change. Runs inside the caller's transaction so the assignment set
// and the status side effects commit or roll back together.
func (s *ProjectService) syncAssignments(tx *gorm.DB, projectID uint, inputs []AssignmentInput) error {
	var oldIDs []uint
	if err := tx.Model(&model.Assignment{}).Where("project_id = ?", projectID).
		Pluck("resource_id", &oldIDs).Error; err != nil {
		return err
	}

	newIDs := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		var count int64
		tx.Model(&model.Resource{}).Where("id = ?", in.ResourceID).Count(&count)
		if count == 0 {
			return fmt.Errorf("40401:resource not found: id=%d", in.ResourceID)
		}
		newIDs = append(newIDs, in.ResourceID)

		var existing model.Assignment
		err := tx.Where("project_id = ? AND resource_id = ?", projectID, in.ResourceID).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			assignment := &model.Assignment{
				ProjectID:     projectID,
				ResourceID:    in.ResourceID,
				AssignedHours: in.AssignedHours,
				StartDate:     in.StartDate,
				EndDate:       in.EndDate,
			}
			if err := tx.Create(assignment).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		err = tx.Model(&existing).Updates(map[string]interface{}{
			"assigned_hours": in.AssignedHours,
			"start_date":     in.StartDate,
			"end_date":       in.EndDate,
		}).Error
		if err != nil {
			return err
		}
	}

	if len(newIDs) == 0 {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("project_id = ? AND resource_id NOT IN ?", projectID, newIDs).
			Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
	}

	return reconcileAvailability(tx, append(oldIDs, newIDs...))
}

// reconcileAvailability recomputes each resource's status from whether any
// assignment still references it: assigned if so, available if not. A
// manual unavailable always wins and is left untouched.
func reconcileAvailability(tx *gorm.DB, resourceIDs []uint) error {
	seen := make(map[uint]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		var resource model.Resource
		if err := tx.First(&resource, id).Error; err != nil {
			return err
		}
		if resource.AvailabilityStatus == model.AvailabilityUnavailable {
			continue
		}

		var count int64
		if err := tx.Model(&model.Assignment{}).Where("resource_id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		status := model.AvailabilityAvailable
		if count > 0 {
			status = model.AvailabilityAssigned
		}
		if status == resource.AvailabilityStatus {
			continue
		}
		if err := tx.Model(&resource).Update("availability_status", status).Error; err != nil {
			return err
		}
	}
	return nil
}

// AvailableResources lists resources offerable on the project forms:
// everything not manually unavailable, plus those already assigned to the
// given project (so an edit can keep them).
func (s *ProjectService) AvailableResources(projectID uint) ([]model.Resource, error) {
	query := s.db.Preload("User").
		Where("availability_status != ?", model.AvailabilityUnavailable)
	if projectID != 0 {
		query = query.Or("id IN (SELECT resource_id FROM project_resources WHERE project_id = ?)", projectID)
	}
	var resources []model.Resource
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
