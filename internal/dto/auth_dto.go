package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest registers an individual learner or a school. Student accounts are enrolled by their school.
type SignupRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required"`
	UserType   string `json:"user_type" binding:"omitempty,oneof=individual school"`
	SchoolName string `json:"school_name"`
	LogoURL    string `json:"logo_url" binding:"omitempty,max=2048"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	UserType   string    `json:"user_type"`
	SchoolID   *uint     `json:"school_id,omitempty"`
	SchoolName string    `json:"school_name,omitempty"`
	LogoURL    string    `json:"logo_url,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse is returned by login and signup. Next is where the client should navigate.
type AuthResponse struct {
	User         UserResponse  `json:"user"`
	Token        string        `json:"token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Next         string        `json:"next"`
	Notification *Notification `json:"notification,omitempty"`
}

type VerifyTokenResponse struct {
	Verified     bool          `json:"verified"`
	User         UserResponse  `json:"user"`
	Next         string        `json:"next,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
