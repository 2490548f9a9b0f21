package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/eduportal/config"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type AttemptService interface {
	CreateAttempt(student *model.User, paperID uint) (*dto.AttemptResponse, error)
	CompleteAttempt(ctx context.Context, studentID, attemptID uint, answers model.AnswerSheet) (*dto.AttemptResponse, error)
	GetStudentAttempts(studentID uint) ([]dto.AttemptResponse, error)
	// GetRosterStudentAttempts lists the attempts of a roster entry owned by the school.
	GetRosterStudentAttempts(schoolID, rosterStudentID uint) ([]dto.AttemptResponse, error)
	// GetAttemptsByPaper lists attempts on a paper owned by the school.
	GetAttemptsByPaper(schoolID, paperID uint) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	attemptRepo    repository.AttemptRepository
	paperRepo      repository.PaperRepository
	questionRepo   repository.QuestionRepository
	studentRepo    repository.StudentRepository
	grader         Grader
	scoreConverter ScoreConverterService
	concurrency    int
	now            func() time.Time
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	paperRepo repository.PaperRepository,
	questionRepo repository.QuestionRepository,
	studentRepo repository.StudentRepository,
	grader Grader,
	scoreConverter ScoreConverterService,
	cfg *config.Config,
) AttemptService {
	concurrency := cfg.Grading.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &attemptService{
		attemptRepo:    attemptRepo,
		paperRepo:      paperRepo,
		questionRepo:   questionRepo,
		studentRepo:    studentRepo,
		grader:         grader,
		scoreConverter: scoreConverter,
		concurrency:    concurrency,
		now:            time.Now,
	}
}

func (s *attemptService) CreateAttempt(student *model.User, paperID uint) (*dto.AttemptResponse, error) {
	paper, err := s.paperRepo.FindByID(paperID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("error finding paper %d: %w", paperID, err)
	}
	// enrolled students only sit their own school's papers
	if student.SchoolID != nil && paper.CreatedBy != *student.SchoolID {
		log.Info().Uint("studentID", student.ID).Uint("paperID", paper.ID).Msg("Student tried to start another school's paper")
		return nil, ErrPaperNotFound
	}

	entry, err := s.studentRepo.FindByUserID(student.ID)
	switch {
	case err == nil && entry.IsSuspended():
		log.Info().Uint("studentID", student.ID).Msg("Suspended student tried to start an attempt")
		return nil, ErrStudentSuspended
	case err != nil && !isNotFound(err):
		return nil, fmt.Errorf("error finding roster entry: %w", err)
	}

	attempt := model.Attempt{
		StudentID: student.ID,
		PaperID:   paper.ID,
		StartTime: s.now(),
		Total:     len(paper.QuestionIDs()),
		Sheet:     datatypes.NewJSONType(model.AnswerSheet{}),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("paperID", paperID).Uint("studentID", student.ID).Msg("Failed to create attempt")
		return nil, fmt.Errorf("error creating attempt: %w", err)
	}
	log.Info().Uint("attemptID", attempt.ID).Uint("paperID", paperID).Uint("studentID", student.ID).Msg("Attempt started")
	resp := toAttemptResponse(&attempt)
	return &resp, nil
}

// CompleteAttempt grades the answers against the paper, stores them with the end time and score,
// and closes the attempt. Unanswered questions count as wrong; answers to questions outside the paper are dropped.
func (s *attemptService) CompleteAttempt(ctx context.Context, studentID, attemptID uint, answers model.AnswerSheet) (*dto.AttemptResponse, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("error finding attempt %d: %w", attemptID, err)
	}
	if attempt.StudentID != studentID {
		return nil, ErrAttemptNotFound
	}
	if attempt.Completed() {
		return nil, ErrAttemptCompleted
	}

	paper, err := s.paperRepo.FindByID(attempt.PaperID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Uint("paperID", attempt.PaperID).Msg("CompleteAttempt: paper lookup failed")
		return nil, fmt.Errorf("error finding paper %d: %w", attempt.PaperID, err)
	}
	questionIDs := paper.QuestionIDs()
	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	kept := make(model.AnswerSheet, len(answers))
	inPaper := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		inPaper[id] = struct{}{}
	}
	for qid, ans := range answers {
		if _, ok := inPaper[qid]; !ok {
			log.Warn().Uint("attemptID", attemptID).Uint("questionID", qid).Msg("CompleteAttempt: answer for a question not part of this paper, skipping.")
			continue
		}
		kept[qid] = ans
	}

	correct, err := s.gradeSheet(ctx, questions, kept)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("CompleteAttempt: grading failed")
		return nil, err
	}
	total := len(questionIDs)
	score, err := s.scoreConverter.ConvertToPercentage(correct, total)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("CompleteAttempt: score conversion failed")
		return nil, fmt.Errorf("error scoring attempt: %w", err)
	}

	endTime := s.now()
	attempt.Sheet = datatypes.NewJSONType(kept)
	attempt.EndTime = &endTime
	attempt.Score = &score
	attempt.Correct = correct
	attempt.Total = total

	updated, err := s.attemptRepo.Complete(attempt)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("CompleteAttempt: failed to store result")
		return nil, fmt.Errorf("error completing attempt: %w", err)
	}
	if !updated {
		// another request closed it first
		return nil, ErrAttemptCompleted
	}

	log.Info().Uint("attemptID", attemptID).Int("correct", correct).Int("total", total).Float64("score", score).Msg("Attempt completed")
	resp := toAttemptResponse(attempt)
	return &resp, nil
}

// gradeSheet evaluates every answered question concurrently and returns the number correct.
func (s *attemptService) gradeSheet(ctx context.Context, questions []model.Question, answers model.AnswerSheet) (int, error) {
	results := make([]bool, len(questions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range questions {
		answer, ok := answers[questions[i].ID]
		if !ok {
			continue
		}
		idx := i
		g.Go(func() error {
			ok, err := s.grader.Evaluate(gctx, &questions[idx], answer)
			if err != nil {
				return fmt.Errorf("grading question %d: %w", questions[idx].ID, err)
			}
			results[idx] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	correct := 0
	for _, ok := range results {
		if ok {
			correct++
		}
	}
	return correct, nil
}

func (s *attemptService) GetStudentAttempts(studentID uint) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to list student attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	return toAttemptResponses(attempts), nil
}

func (s *attemptService) GetRosterStudentAttempts(schoolID, rosterStudentID uint) ([]dto.AttemptResponse, error) {
	entry, err := s.studentRepo.FindByID(rosterStudentID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error finding student %d: %w", rosterStudentID, err)
	}
	if entry.SchoolID != schoolID {
		return nil, ErrStudentNotFound
	}
	if entry.UserID == nil {
		// roster entry without a login has never attempted anything
		return []dto.AttemptResponse{}, nil
	}
	return s.GetStudentAttempts(*entry.UserID)
}

func (s *attemptService) GetAttemptsByPaper(schoolID, paperID uint) ([]dto.AttemptResponse, error) {
	paper, err := s.paperRepo.FindByID(paperID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("error finding paper %d: %w", paperID, err)
	}
	if paper.CreatedBy != schoolID {
		return nil, ErrPaperNotFound
	}
	attempts, err := s.attemptRepo.FindByPaper(paperID)
	if err != nil {
		log.Error().Err(err).Uint("paperID", paperID).Msg("Failed to list paper attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	return toAttemptResponses(attempts), nil
}
