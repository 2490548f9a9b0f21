package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmittedAnswer is what a student sent for one question. Single-valued answers hold one element.
type SubmittedAnswer []string

// UnmarshalJSON accepts either a bare string or an array of strings.
func (a *SubmittedAnswer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = SubmittedAnswer{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings: %w", err)
	}
	*a = many
	return nil
}

// AnswerSheet maps question ids to submitted answers.
type AnswerSheet map[uint]SubmittedAnswer

type Attempt struct {
	ID        uint                            `gorm:"primarykey" json:"id"`
	StudentID uint                            `json:"student_id" gorm:"not null;index"` // user id of the student account
	PaperID   uint                            `json:"paper_id" gorm:"not null;index"`
	Paper     Paper                           `json:"-" gorm:"foreignKey:PaperID"`
	StartTime time.Time                       `json:"start_time" gorm:"not null"`
	EndTime   *time.Time                      `json:"end_time,omitempty"`
	Score     *float64                        `json:"score,omitempty"`
	Correct   int                             `json:"correct"`
	Total     int                             `json:"total"`
	Sheet     datatypes.JSONType[AnswerSheet] `json:"-" gorm:"column:answers"`
	CreatedAt time.Time                       `json:"created_at"`
	UpdatedAt time.Time                       `json:"updated_at"`
	DeletedAt gorm.DeletedAt                  `gorm:"index" json:"-"`
}

func (a *Attempt) Answers() AnswerSheet {
	return a.Sheet.Data()
}

func (a *Attempt) Completed() bool {
	return a.EndTime != nil
}
