package service

import (
	"errors"

	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

// Domain errors. Controllers map them to HTTP statuses with errors.Is.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrForbidden          = errors.New("permission denied")
	ErrSchoolNotVerified  = errors.New("school account not verified")

	ErrStudentNotFound  = errors.New("Student not found")
	ErrStudentSuspended = errors.New("student account is suspended")

	ErrSubjectNotFound  = errors.New("subject not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidAnswerKey = model.ErrInvalidAnswerKey

	ErrPaperNotFound = errors.New("paper not found")
	ErrInvalidPaper  = errors.New("invalid paper")

	ErrAttemptNotFound  = errors.New("Attempt not found")
	ErrAttemptCompleted = errors.New("attempt already completed")
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
