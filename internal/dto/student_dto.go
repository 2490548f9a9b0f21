package dto

import "time"

type AddStudentRequest struct {
	Username string `json:"username" binding:"required,max=64,roster_username"`
	Name     string `json:"name" binding:"required,max=255"`
}

type UpdateStudentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// BulkUploadStudentsRequest carries an already-parsed roster.
type BulkUploadStudentsRequest struct {
	Students []AddStudentRequest `json:"students" binding:"required,min=1,max=500,dive"`
}

type StudentResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
