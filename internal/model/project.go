package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProjectStatusUpcoming  = "upcoming"
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
)

type Project struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	EstimateHours  float64        `gorm:"not null" json:"estimate_hours"`
	HoursRemaining *float64       `json:"hours_remaining"`
	Deadline       *time.Time     `gorm:"type:date" json:"deadline"`
	Status         string         `gorm:"type:varchar(10);default:upcoming;index:idx_status" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Assignments []Assignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}

func (Project) TableName() string { return "projects" }
