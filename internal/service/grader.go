package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/eduportal/internal/model"
)

// Grader decides whether a submitted answer matches a question's key. It never gives partial credit.
type Grader interface {
	Evaluate(ctx context.Context, question *model.Question, answer model.SubmittedAnswer) (bool, error)
}

// TextGrader judges free-text answers against a model answer.
type TextGrader interface {
	GradeText(ctx context.Context, question *model.Question, modelAnswer, answer string) (bool, error)
}

type grader struct {
	text TextGrader
}

func NewGrader(text TextGrader) Grader {
	return &grader{text: text}
}

func (g *grader) Evaluate(ctx context.Context, question *model.Question, answer model.SubmittedAnswer) (bool, error) {
	if len(answer) == 0 {
		return false, nil
	}
	key := question.AnswerKey()

	switch question.Type {
	case model.QuestionTypeObjective:
		return len(answer) == 1 && answer[0] == key.Choice, nil
	case model.QuestionTypeCheckbox:
		return isCorrectAllOrNothing(answer, key.Choices), nil
	case model.QuestionTypeDragDrop:
		return equalOrdered(answer, key.Pairing), nil
	case model.QuestionTypeText:
		given := strings.TrimSpace(strings.Join(answer, " "))
		if given == "" {
			return false, nil
		}
		return g.text.GradeText(ctx, question, key.Text, given)
	default:
		return false, fmt.Errorf("%w: unknown question type %q", ErrInvalidAnswerKey, question.Type)
	}
}

// isCorrectAllOrNothing treats both inputs as sets. Duplicates in selected never count twice.
func isCorrectAllOrNothing(selected, correct []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	selSet := make(map[string]struct{}, len(selected))
	for _, k := range selected {
		selSet[k] = struct{}{}
	}
	// duplicates in selected shrink the set
	if len(selSet) != len(correct) {
		return false
	}
	for _, k := range correct {
		if _, ok := selSet[k]; !ok {
			return false
		}
	}
	return true
}

func equalOrdered(given, want []string) bool {
	if len(given) != len(want) {
		return false
	}
	for i := range want {
		if given[i] != want[i] {
			return false
		}
	}
	return true
}

type exactTextGrader struct{}

// NewExactTextGrader compares answers ignoring case, spacing and a trailing full stop.
func NewExactTextGrader() TextGrader {
	return exactTextGrader{}
}

func (exactTextGrader) GradeText(_ context.Context, _ *model.Question, modelAnswer, answer string) (bool, error) {
	return normalizeText(modelAnswer) == normalizeText(answer), nil
}

func normalizeText(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimRight(s, ".")
}
