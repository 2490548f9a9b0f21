package service

import (
	"context"
	"testing"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnswer(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name         string
		req          dto.CheckAnswerRequest
		wantCorrect  bool
		wantFeedback string
	}{
		{"objective correct", dto.CheckAnswerRequest{QuestionID: 1, Answer: []string{"4"}}, true, "Correct! Well done."},
		{"objective wrong", dto.CheckAnswerRequest{QuestionID: 1, Answer: []string{"5"}}, false, "Incorrect. The correct answer is 4."},
		{"checkbox correct", dto.CheckAnswerRequest{QuestionID: 2, Answer: []string{"5", "2"}}, true, "Correct! All options selected properly."},
		{"checkbox wrong", dto.CheckAnswerRequest{QuestionID: 2, Answer: []string{"2"}}, false, "Some selections were incorrect."},
		{"dragdrop wrong", dto.CheckAnswerRequest{QuestionID: 3, Answer: []string{"2"}}, false,
			"Incorrect. The correct answer is x + 5 = 7 -> 2; 2x = 6 -> 3; 3x - 9 = 0 -> 3; x + x = 8 -> 4."},
		{"text correct", dto.CheckAnswerRequest{QuestionID: 4, Answer: []string{"the process by which green plants make their own food"}}, true, "Correct! Well done."},
		{"empty answer", dto.CheckAnswerRequest{QuestionID: 1}, false, "Incorrect. The correct answer is 4."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.learning.CheckAnswer(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, resp.Correct)
			assert.Equal(t, tt.wantFeedback, resp.Feedback)
		})
	}

	_, err := env.learning.CheckAnswer(context.Background(), dto.CheckAnswerRequest{QuestionID: 99, Answer: []string{"x"}})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
