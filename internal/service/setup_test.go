package service

import (
	"testing"

	"github.com/lshigami/eduportal/internal/auth"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/lshigami/eduportal/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Ids from the demo seed.
const (
	seedSchoolID     uint = 1
	seedStudentID    uint = 2
	seedIndividualID uint = 3
	seedRosterJohn   uint = 2
	seedRosterAlice  uint = 4
	seedRosterBob    uint = 5
	seedMathPaper    uint = 1
	seedSciencePaper uint = 2
)

type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	students repository.StudentRepository
	attempts repository.AttemptRepository

	auth     AuthService
	roster   StudentService
	catalog  CatalogService
	papers   PaperService
	attempt  AttemptService
	reports  ReportService
	learning LearningService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := testutil.Config()
	db := testutil.NewSeededDB(t)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	paperRepo := repository.NewPaperRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	grader := NewGrader(NewExactTextGrader())

	return &testEnv{
		db:       db,
		users:    userRepo,
		students: studentRepo,
		attempts: attemptRepo,
		auth:     NewAuthService(userRepo, sessionRepo, auth.NewTokenManager(cfg), cfg),
		roster:   NewStudentService(studentRepo),
		catalog:  NewCatalogService(subjectRepo, questionRepo),
		papers:   NewPaperService(paperRepo, questionRepo, subjectRepo, attemptRepo),
		attempt:  NewAttemptService(attemptRepo, paperRepo, questionRepo, studentRepo, grader, NewScoreConverterService(), cfg),
		reports:  NewReportService(paperRepo, attemptRepo),
		learning: NewLearningService(questionRepo, grader),
	}
}

func (e *testEnv) user(t *testing.T, id uint) *model.User {
	t.Helper()
	u, err := e.users.FindByID(id)
	require.NoError(t, err)
	return u
}

func (e *testEnv) session(t *testing.T, id uint) *Session {
	t.Helper()
	return &Session{ID: "test-session", User: e.user(t, id)}
}
