package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	feedbackCorrect           = "Correct! Well done."
	feedbackCheckboxCorrect   = "Correct! All options selected properly."
	feedbackCheckboxIncorrect = "Some selections were incorrect."
)

// LearningService gives immediate feedback on practice questions. Nothing is recorded.
type LearningService interface {
	CheckAnswer(ctx context.Context, req dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
}

type learningService struct {
	questionRepo repository.QuestionRepository
	grader       Grader
}

func NewLearningService(questionRepo repository.QuestionRepository, grader Grader) LearningService {
	return &learningService{questionRepo: questionRepo, grader: grader}
}

func (s *learningService) CheckAnswer(ctx context.Context, req dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error finding question %d: %w", req.QuestionID, err)
	}

	correct, err := s.grader.Evaluate(ctx, question, req.Answer)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to evaluate practice answer")
		return nil, err
	}

	expected := describeKey(question)
	resp := &dto.CheckAnswerResponse{
		QuestionID:    question.ID,
		Correct:       correct,
		CorrectAnswer: expected,
		Feedback:      feedback(question.Type, correct, expected),
	}
	return resp, nil
}

// feedback mirrors the practice screen: checkbox questions get their own wording.
func feedback(questionType model.QuestionType, correct bool, expected string) string {
	switch {
	case questionType == model.QuestionTypeCheckbox && correct:
		return feedbackCheckboxCorrect
	case questionType == model.QuestionTypeCheckbox:
		return feedbackCheckboxIncorrect
	case correct:
		return feedbackCorrect
	}
	return fmt.Sprintf("Incorrect. The correct answer is %s.", expected)
}

// describeKey renders a question's key the way a student reads it.
func describeKey(question *model.Question) string {
	key := question.AnswerKey()
	switch question.Type {
	case model.QuestionTypeObjective:
		return key.Choice
	case model.QuestionTypeCheckbox:
		return strings.Join(key.Choices, ", ")
	case model.QuestionTypeDragDrop:
		options := question.OptionList()
		if len(options) != len(key.Pairing) {
			return strings.Join(key.Pairing, ", ")
		}
		pairs := make([]string, 0, len(options))
		for i, option := range options {
			pairs = append(pairs, option+" -> "+key.Pairing[i])
		}
		return strings.Join(pairs, "; ")
	case model.QuestionTypeText:
		return key.Text
	default:
		return ""
	}
}
