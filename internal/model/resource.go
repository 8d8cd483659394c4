package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityAssigned    = "assigned"
	AvailabilityUnavailable = "unavailable"
)

type Resource struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"not null;uniqueIndex:uk_resource_user" json:"user_id"`
	Capacity           float64        `gorm:"not null" json:"capacity"`
	AvailabilityStatus string         `gorm:"type:varchar(15);not null;default:available;index:idx_availability" json:"availability_status"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:ResourceID" json:"assignments,omitempty"`
}

func (Resource) TableName() string { return "resources" }
