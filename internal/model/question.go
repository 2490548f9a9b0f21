package model

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeObjective QuestionType = "objective"
	QuestionTypeCheckbox  QuestionType = "checkbox"
	QuestionTypeDragDrop  QuestionType = "dragdrop"
	QuestionTypeText      QuestionType = "text"
)

var ErrInvalidAnswerKey = errors.New("answer key does not match question type")

// AnswerKey holds the correct answer of a question. Exactly one variant is set, chosen by the question type:
// Choice for objective, Choices for checkbox, Pairing for dragdrop and Text for text.
type AnswerKey struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Pairing []string `json:"pairing,omitempty"` // Pairing[i] is the match for Options[i]
	Text    string   `json:"text,omitempty"`
}

type Question struct {
	ID        uint                          `gorm:"primarykey" json:"id"`
	SubjectID uint                          `json:"subject_id" gorm:"not null;index"`
	Subject   Subject                       `json:"-" gorm:"foreignKey:SubjectID"`
	Text      string                        `json:"text" gorm:"type:text;not null"`
	Type      QuestionType                  `json:"type" gorm:"not null"`
	Options   datatypes.JSONType[[]string]  `json:"-" gorm:"column:options"`
	Key       datatypes.JSONType[AnswerKey] `json:"-" gorm:"column:answer_key"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`
	DeletedAt gorm.DeletedAt                `gorm:"index" json:"-"`
}

func (q *Question) OptionList() []string {
	return q.Options.Data()
}

func (q *Question) AnswerKey() AnswerKey {
	return q.Key.Data()
}

// Validate checks the answer key against the question type and its options.
func (q *Question) Validate() error {
	key := q.AnswerKey()
	options := q.OptionList()

	switch q.Type {
	case QuestionTypeObjective:
		if key.Choice == "" || len(key.Choices) > 0 || len(key.Pairing) > 0 || key.Text != "" {
			return fmt.Errorf("%w: objective questions need exactly one choice", ErrInvalidAnswerKey)
		}
		if len(options) > 0 && !contains(options, key.Choice) {
			return fmt.Errorf("%w: choice %q is not one of the options", ErrInvalidAnswerKey, key.Choice)
		}
	case QuestionTypeCheckbox:
		if len(key.Choices) == 0 || key.Choice != "" || len(key.Pairing) > 0 || key.Text != "" {
			return fmt.Errorf("%w: checkbox questions need a set of choices", ErrInvalidAnswerKey)
		}
		seen := make(map[string]struct{}, len(key.Choices))
		for _, c := range key.Choices {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: choice %q is listed twice", ErrInvalidAnswerKey, c)
			}
			seen[c] = struct{}{}
			if len(options) > 0 && !contains(options, c) {
				return fmt.Errorf("%w: choice %q is not one of the options", ErrInvalidAnswerKey, c)
			}
		}
	case QuestionTypeDragDrop:
		if len(key.Pairing) == 0 || key.Choice != "" || len(key.Choices) > 0 || key.Text != "" {
			return fmt.Errorf("%w: drag and drop questions need an ordered pairing", ErrInvalidAnswerKey)
		}
		if len(options) > 0 && len(options) != len(key.Pairing) {
			return fmt.Errorf("%w: pairing has %d entries for %d options", ErrInvalidAnswerKey, len(key.Pairing), len(options))
		}
	case QuestionTypeText:
		if key.Text == "" || key.Choice != "" || len(key.Choices) > 0 || len(key.Pairing) > 0 {
			return fmt.Errorf("%w: text questions need a model answer", ErrInvalidAnswerKey)
		}
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidAnswerKey, q.Type)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
