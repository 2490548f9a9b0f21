package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type CatalogService interface {
	GetSubjects() ([]dto.SubjectResponse, error)
	GetQuestionsBySubject(subjectID uint, revealKeys bool) ([]dto.QuestionResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
}

type catalogService struct {
	subjectRepo  repository.SubjectRepository
	questionRepo repository.QuestionRepository
}

func NewCatalogService(subjectRepo repository.SubjectRepository, questionRepo repository.QuestionRepository) CatalogService {
	return &catalogService{subjectRepo: subjectRepo, questionRepo: questionRepo}
}

func (s *catalogService) GetSubjects() ([]dto.SubjectResponse, error) {
	subjects, err := s.subjectRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list subjects")
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}
	resp := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		resp = append(resp, dto.SubjectResponse{ID: subject.ID, Name: subject.Name, Color: subject.Color})
	}
	return resp, nil
}

func (s *catalogService) GetQuestionsBySubject(subjectID uint, revealKeys bool) ([]dto.QuestionResponse, error) {
	if _, err := s.subjectRepo.FindByID(subjectID); err != nil {
		if isNotFound(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error finding subject %d: %w", subjectID, err)
	}
	questions, err := s.questionRepo.FindBySubject(subjectID)
	if err != nil {
		log.Error().Err(err).Uint("subjectID", subjectID).Msg("Failed to list questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i], revealKeys))
	}
	return resp, nil
}

// CreateQuestion adds a question to the bank after checking its key against its type.
func (s *catalogService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.subjectRepo.FindByID(req.SubjectID); err != nil {
		if isNotFound(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error finding subject %d: %w", req.SubjectID, err)
	}

	question := model.Question{
		SubjectID: req.SubjectID,
		Text:      strings.TrimSpace(req.Text),
		Type:      model.QuestionType(req.Type),
		Options:   datatypes.NewJSONType(req.Options),
		Key: datatypes.NewJSONType(model.AnswerKey{
			Choice:  req.Key.Choice,
			Choices: req.Key.Choices,
			Pairing: req.Key.Pairing,
			Text:    req.Key.Text,
		}),
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("subjectID", req.SubjectID).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	resp := toQuestionResponse(&question, true)
	return &resp, nil
}
