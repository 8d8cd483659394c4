package service

import (
	"fmt"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

func (s *ResourceService) List() ([]model.Resource, error) {
	var resources []model.Resource
	err := s.db.Preload("User").Preload("Assignments.Project").
		Order("created_at desc").Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *ResourceService) GetByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	err := s.db.Preload("User").Preload("Assignments.Project").First(&resource, id).Error
	if err != nil {
		return nil, fmt.Errorf("40402:resource not found")
	}
	return &resource, nil
}

type CreateResourceInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Capacity float64
	Status   string
	Notes    string
}

// Create inserts the user account and its resource profile in one
// transaction; a resource never exists without its user.
func (s *ResourceService) Create(in CreateResourceInput) (*model.Resource, error) {
	var count int64
	s.db.Model(&model.User{}).Where("email = ?", in.Email).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:email is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleResource
	}
	status := in.Status
	if status == "" {
		status = model.AvailabilityAvailable
	}

	resource := &model.Resource{
		Capacity:           in.Capacity,
		AvailabilityStatus: status,
		Notes:              in.Notes,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Name:     in.Name,
			Email:    in.Email,
			Password: string(hash),
			Role:     role,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		resource.UserID = user.ID
		return tx.Create(resource).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(resource.ID)
}

type UpdateResourceInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Capacity float64
	Status   string
	Notes    string
}

func (s *ResourceService) Update(id uint, in UpdateResourceInput) (*model.Resource, error) {
	resource, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&model.User{}).Where("email = ? AND id != ?", in.Email, resource.UserID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:email is already taken")
	}

	userUpdates := map[string]interface{}{
		"name":  in.Name,
		"email": in.Email,
		"role":  in.Role,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		userUpdates["password"] = string(hash)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", resource.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}
		return tx.Model(&model.Resource{}).Where("id = ?", id).Updates(map[string]interface{}{
			"capacity":            in.Capacity,
			"availability_status": in.Status,
			"notes":               in.Notes,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a resource, refusing while it still holds an active
// assignment: one on a non-completed project whose date range has not
// ended (open-ended ranges count as active).
func (s *ResourceService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	today := time.Now().UTC().Format("2006-01-02")
	var active int64
	s.db.Model(&model.Assignment{}).
		Joins("JOIN projects ON projects.id = project_resources.project_id").
		Where("project_resources.resource_id = ?", id).
		Where("projects.status != ? AND projects.deleted_at IS NULL", model.ProjectStatusCompleted).
		Where("project_resources.end_date >= ? OR project_resources.end_date IS NULL", today).
		Count(&active)
	if active > 0 {
		return fmt.Errorf("40003:resource is assigned to active projects and cannot be deleted")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Resource{}, id).Error
	})
}

// ToggleAvailability flips available to unavailable and anything else back
// to available. Manual toggling overrides the assignment-driven status.
func (s *ResourceService) ToggleAvailability(id uint) (*model.Resource, error) {
	resource, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	status := model.AvailabilityAvailable
	if resource.AvailabilityStatus == model.AvailabilityAvailable {
		status = model.AvailabilityUnavailable
	}
	if err := s.db.Model(resource).Update("availability_status", status).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
