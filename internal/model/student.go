package model

import (
	"time"

	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusSuspended StudentStatus = "suspended"
)

// Student is a roster entry owned by a school. UserID links it to a student login when one exists.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SchoolID  uint           `json:"school_id" gorm:"not null;index"`
	UserID    *uint          `json:"user_id,omitempty" gorm:"index"`
	Username  string         `json:"username" gorm:"not null"`
	Name      string         `json:"name" gorm:"not null"`
	Status    StudentStatus  `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Student) IsSuspended() bool {
	return s.Status == StudentStatusSuspended
}
