package dto

import "time"

type CreatePaperRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	SubjectID   uint   `json:"subject_id" binding:"required"`
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1,dive,required"`
}

type PaperResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	SubjectID   uint      `json:"subject_id"`
	QuestionIDs []uint    `json:"question_ids"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// SchoolPaperResponse is a paper in the owning school's list.
type SchoolPaperResponse struct {
	PaperResponse
	AttemptCount int `json:"attempt_count"`
}

// StudentPaperResponse is a paper annotated with the caller's progress on it.
type StudentPaperResponse struct {
	PaperResponse
	Attempted bool     `json:"attempted"`
	Score     *float64 `json:"score,omitempty"`
}

type PaperDetailResponse struct {
	PaperResponse
	Questions []QuestionResponse `json:"questions"`
}

type PaperReportResponse struct {
	PaperID        uint     `json:"paper_id"`
	Title          string   `json:"title"`
	AttemptCount   int      `json:"attempt_count"`
	CompletedCount int      `json:"completed_count"`
	AverageScore   *float64 `json:"average_score,omitempty"`
	HighestScore   *float64 `json:"highest_score,omitempty"`
	LowestScore    *float64 `json:"lowest_score,omitempty"`
}
