package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeSchool     UserType = "school"
	UserTypeStudent    UserType = "student"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	Name         string         `json:"name" gorm:"not null"`
	UserType     UserType       `json:"user_type" gorm:"not null;default:'individual'"`
	SchoolID     *uint          `json:"school_id,omitempty" gorm:"index"` // students only
	SchoolName   string         `json:"school_name,omitempty"`            // schools only
	LogoURL      string         `json:"logo_url,omitempty"`
	IsVerified   bool           `json:"is_verified"`
	PasswordHash []byte         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsSchool() bool {
	return u.UserType == UserTypeSchool
}

func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}

// NeedsVerification reports whether the account is a school that has not redeemed its verification token yet.
func (u *User) NeedsVerification() bool {
	return u.IsSchool() && !u.IsVerified
}
