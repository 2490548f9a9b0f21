package dto

import "github.com/lshigami/eduportal/internal/model"

type SubjectResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AnswerKeyDTO mirrors model.AnswerKey. Only the variant matching the question type is set.
type AnswerKeyDTO struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Pairing []string `json:"pairing,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type CreateQuestionRequest struct {
	SubjectID uint         `json:"subject_id" binding:"required"`
	Text      string       `json:"text" binding:"required"`
	Type      string       `json:"type" binding:"required,oneof=objective checkbox dragdrop text"`
	Options   []string     `json:"options" binding:"omitempty,dive,required"`
	Key       AnswerKeyDTO `json:"key"`
}

// QuestionResponse hides the answer key unless the caller may see it.
type QuestionResponse struct {
	ID        uint          `json:"id"`
	SubjectID uint          `json:"subject_id"`
	Text      string        `json:"text"`
	Type      string        `json:"type"`
	Options   []string      `json:"options,omitempty"`
	Key       *AnswerKeyDTO `json:"key,omitempty"`
}

type CheckAnswerRequest struct {
	QuestionID uint                  `json:"question_id" binding:"required"`
	Answer     model.SubmittedAnswer `json:"answer" swaggertype:"array,string"`
}

// CheckAnswerResponse is the immediate feedback shown in Learning Mode.
type CheckAnswerResponse struct {
	QuestionID    uint   `json:"question_id"`
	Correct       bool   `json:"correct"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correct_answer"`
}
