package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func newQuestion(qType QuestionType, options []string, key AnswerKey) *Question {
	return &Question{
		Type:    qType,
		Options: datatypes.NewJSONType(options),
		Key:     datatypes.NewJSONType(key),
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name     string
		question *Question
		wantErr  bool
	}{
		{"objective ok", newQuestion(QuestionTypeObjective, []string{"3", "4"}, AnswerKey{Choice: "4"}), false},
		{"objective choice not an option", newQuestion(QuestionTypeObjective, []string{"3", "4"}, AnswerKey{Choice: "7"}), true},
		{"objective with choices", newQuestion(QuestionTypeObjective, nil, AnswerKey{Choice: "4", Choices: []string{"4"}}), true},
		{"checkbox ok", newQuestion(QuestionTypeCheckbox, []string{"2", "4", "5"}, AnswerKey{Choices: []string{"2", "5"}}), false},
		{"checkbox duplicate", newQuestion(QuestionTypeCheckbox, nil, AnswerKey{Choices: []string{"2", "2"}}), true},
		{"checkbox empty", newQuestion(QuestionTypeCheckbox, nil, AnswerKey{}), true},
		{"dragdrop ok", newQuestion(QuestionTypeDragDrop, []string{"a", "b"}, AnswerKey{Pairing: []string{"1", "2"}}), false},
		{"dragdrop length mismatch", newQuestion(QuestionTypeDragDrop, []string{"a", "b"}, AnswerKey{Pairing: []string{"1"}}), true},
		{"text ok", newQuestion(QuestionTypeText, nil, AnswerKey{Text: "food"}), false},
		{"text with choice", newQuestion(QuestionTypeText, nil, AnswerKey{Text: "food", Choice: "x"}), true},
		{"unknown type", newQuestion("essay", nil, AnswerKey{Text: "x"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAnswerKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
