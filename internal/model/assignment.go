package model

import "time"

// Assignment is the project_resources pivot: one resource allocated to one
// project for a date range with a fixed hour budget. The whole set for a
// project is replaced in place on every project edit.
type Assignment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ProjectID     uint       `gorm:"not null;uniqueIndex:uk_project_resource" json:"project_id"`
	ResourceID    uint       `gorm:"not null;uniqueIndex:uk_project_resource;index:idx_resource_id" json:"resource_id"`
	AssignedHours float64    `gorm:"not null" json:"assigned_hours"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Project  *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

func (Assignment) TableName() string { return "project_resources" }
