package dto

import (
	"time"

	"github.com/lshigami/eduportal/internal/model"
)

type CreateAttemptRequest struct {
	PaperID uint `json:"paper_id" binding:"required"`
}

// CompleteAttemptRequest maps question ids to answers. An answer is a string or a list of strings.
type CompleteAttemptRequest struct {
	Answers model.AnswerSheet `json:"answers" binding:"required"`
}

type AttemptResponse struct {
	ID        uint              `json:"id"`
	StudentID uint              `json:"student_id"`
	PaperID   uint              `json:"paper_id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   *time.Time        `json:"end_time,omitempty"`
	Score     *float64          `json:"score,omitempty"`
	Correct   int               `json:"correct"`
	Total     int               `json:"total"`
	Answers   model.AnswerSheet `json:"answers"`
}
