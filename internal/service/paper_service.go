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

type PaperService interface {
	CreatePaper(sess *Session, req dto.CreatePaperRequest) (*dto.PaperResponse, error)
	GetPaper(paperID uint, revealKeys bool) (*dto.PaperDetailResponse, error)
	GetPapersBySchool(schoolID uint) ([]dto.SchoolPaperResponse, error)
	// GetPapersBySubjectForStudent lists a subject's papers annotated with the student's attempts.
	// Students enrolled in a school only see that school's papers.
	GetPapersBySubjectForStudent(student *model.User, subjectID uint) ([]dto.StudentPaperResponse, error)
}

type paperService struct {
	paperRepo    repository.PaperRepository
	questionRepo repository.QuestionRepository
	subjectRepo  repository.SubjectRepository
	attemptRepo  repository.AttemptRepository
}

func NewPaperService(
	paperRepo repository.PaperRepository,
	questionRepo repository.QuestionRepository,
	subjectRepo repository.SubjectRepository,
	attemptRepo repository.AttemptRepository,
) PaperService {
	return &paperService{
		paperRepo:    paperRepo,
		questionRepo: questionRepo,
		subjectRepo:  subjectRepo,
		attemptRepo:  attemptRepo,
	}
}

func (s *paperService) CreatePaper(sess *Session, req dto.CreatePaperRequest) (*dto.PaperResponse, error) {
	if sess == nil || sess.User == nil {
		return nil, ErrNotAuthenticated
	}
	if !sess.User.IsSchool() {
		return nil, ErrForbidden
	}
	if _, err := s.subjectRepo.FindByID(req.SubjectID); err != nil {
		if isNotFound(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error finding subject %d: %w", req.SubjectID, err)
	}
	if err := s.checkQuestions(req.SubjectID, req.QuestionIDs); err != nil {
		return nil, err
	}

	paper := model.Paper{
		Title:        strings.TrimSpace(req.Title),
		SubjectID:    req.SubjectID,
		QuestionList: datatypes.NewJSONType(req.QuestionIDs),
		CreatedBy:    sess.User.ID,
	}
	if err := s.paperRepo.Create(&paper); err != nil {
		log.Error().Err(err).Uint("schoolID", sess.User.ID).Msg("Failed to create paper")
		return nil, fmt.Errorf("error creating paper: %w", err)
	}
	log.Info().Uint("paperID", paper.ID).Uint("schoolID", sess.User.ID).Int("questions", len(req.QuestionIDs)).Msg("Paper created")
	resp := toPaperResponse(&paper)
	return &resp, nil
}

// checkQuestions requires every id to name a distinct question of the subject.
func (s *paperService) checkQuestions(subjectID uint, ids []uint) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: a paper needs at least one question", ErrInvalidPaper)
	}
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: question %d is listed twice", ErrInvalidPaper, id)
		}
		seen[id] = struct{}{}
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return fmt.Errorf("error fetching questions: %w", err)
	}
	found := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		found[q.ID] = q
	}
	for _, id := range ids {
		q, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: question %d does not exist", ErrInvalidPaper, id)
		}
		if q.SubjectID != subjectID {
			return fmt.Errorf("%w: question %d belongs to another subject", ErrInvalidPaper, id)
		}
	}
	return nil
}

func (s *paperService) GetPaper(paperID uint, revealKeys bool) (*dto.PaperDetailResponse, error) {
	paper, err := s.findPaper(paperID)
	if err != nil {
		return nil, err
	}
	ids := paper.QuestionIDs()
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		log.Error().Err(err).Uint("paperID", paperID).Msg("Failed to load paper questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	resp := dto.PaperDetailResponse{PaperResponse: toPaperResponse(paper), Questions: make([]dto.QuestionResponse, 0, len(ids))}
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			resp.Questions = append(resp.Questions, toQuestionResponse(q, revealKeys))
		}
	}
	return &resp, nil
}

func (s *paperService) GetPapersBySchool(schoolID uint) ([]dto.SchoolPaperResponse, error) {
	papers, err := s.paperRepo.FindByCreatorWithAttemptCount(schoolID)
	if err != nil {
		log.Error().Err(err).Uint("schoolID", schoolID).Msg("Failed to list school papers")
		return nil, fmt.Errorf("error fetching papers: %w", err)
	}
	resp := make([]dto.SchoolPaperResponse, 0, len(papers))
	for i := range papers {
		resp = append(resp, dto.SchoolPaperResponse{
			PaperResponse: toPaperResponse(&papers[i].Paper),
			AttemptCount:  papers[i].AttemptCount,
		})
	}
	return resp, nil
}

func (s *paperService) GetPapersBySubjectForStudent(student *model.User, subjectID uint) ([]dto.StudentPaperResponse, error) {
	papers, err := s.paperRepo.FindBySubject(subjectID)
	if err != nil {
		log.Error().Err(err).Uint("subjectID", subjectID).Msg("Failed to list subject papers")
		return nil, fmt.Errorf("error fetching papers: %w", err)
	}
	attempts, err := s.attemptRepo.FindByStudent(student.ID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("Failed to list student attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	// attempts are newest first, so the first completed one per paper is the latest result
	attempted := make(map[uint]bool)
	latestScore := make(map[uint]*float64)
	for _, a := range attempts {
		attempted[a.PaperID] = true
		if _, ok := latestScore[a.PaperID]; !ok && a.Completed() && a.Score != nil {
			latestScore[a.PaperID] = a.Score
		}
	}

	resp := make([]dto.StudentPaperResponse, 0, len(papers))
	for i := range papers {
		if student.SchoolID != nil && papers[i].CreatedBy != *student.SchoolID {
			continue
		}
		resp = append(resp, dto.StudentPaperResponse{
			PaperResponse: toPaperResponse(&papers[i]),
			Attempted:     attempted[papers[i].ID],
			Score:         latestScore[papers[i].ID],
		})
	}
	return resp, nil
}

func (s *paperService) findPaper(paperID uint) (*model.Paper, error) {
	paper, err := s.paperRepo.FindByID(paperID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("error finding paper %d: %w", paperID, err)
	}
	return paper, nil
}
