package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
)

// StudentService manages a school's roster. Every method is scoped to the calling school:
// students of another school behave as if they did not exist.
type StudentService interface {
	GetStudents(schoolID uint) ([]dto.StudentResponse, error)
	AddStudent(schoolID uint, req dto.AddStudentRequest) (*dto.StudentResponse, error)
	UpdateStudentStatus(schoolID, studentID uint, status string) (*dto.StudentResponse, error)
	RemoveStudent(schoolID, studentID uint) error
	BulkUploadStudents(schoolID uint, req dto.BulkUploadStudentsRequest) ([]dto.StudentResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) GetStudents(schoolID uint) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindBySchool(schoolID)
	if err != nil {
		log.Error().Err(err).Uint("schoolID", schoolID).Msg("Failed to list students")
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	return toStudentResponses(students), nil
}

// AddStudent appends one active roster entry. Usernames are not checked for uniqueness.
func (s *studentService) AddStudent(schoolID uint, req dto.AddStudentRequest) (*dto.StudentResponse, error) {
	student := newRosterEntry(schoolID, req)
	if err := s.studentRepo.Create(&student); err != nil {
		log.Error().Err(err).Uint("schoolID", schoolID).Msg("Failed to add student")
		return nil, fmt.Errorf("error adding student: %w", err)
	}
	log.Info().Uint("schoolID", schoolID).Uint("studentID", student.ID).Msg("Student added")
	resp := toStudentResponse(&student)
	return &resp, nil
}

func (s *studentService) UpdateStudentStatus(schoolID, studentID uint, status string) (*dto.StudentResponse, error) {
	newStatus := model.StudentStatus(status)
	if newStatus != model.StudentStatusActive && newStatus != model.StudentStatusSuspended {
		return nil, fmt.Errorf("unknown student status %q", status)
	}
	student, err := s.findOwned(schoolID, studentID)
	if err != nil {
		return nil, err
	}
	student.Status = newStatus
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to update student status")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) RemoveStudent(schoolID, studentID uint) error {
	if _, err := s.findOwned(schoolID, studentID); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(studentID); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to remove student")
		return fmt.Errorf("error removing student: %w", err)
	}
	log.Info().Uint("schoolID", schoolID).Uint("studentID", studentID).Msg("Student removed")
	return nil
}

// BulkUploadStudents adds the whole list in one transaction.
func (s *studentService) BulkUploadStudents(schoolID uint, req dto.BulkUploadStudentsRequest) ([]dto.StudentResponse, error) {
	students := make([]model.Student, 0, len(req.Students))
	for _, entry := range req.Students {
		students = append(students, newRosterEntry(schoolID, entry))
	}
	if err := s.studentRepo.CreateBatch(students); err != nil {
		log.Error().Err(err).Uint("schoolID", schoolID).Int("count", len(students)).Msg("Bulk upload failed")
		return nil, fmt.Errorf("error uploading students: %w", err)
	}
	log.Info().Uint("schoolID", schoolID).Int("count", len(students)).Msg("Students bulk uploaded")
	return toStudentResponses(students), nil
}

func (s *studentService) findOwned(schoolID, studentID uint) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error finding student %d: %w", studentID, err)
	}
	if student.SchoolID != schoolID {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func newRosterEntry(schoolID uint, req dto.AddStudentRequest) model.Student {
	return model.Student{
		SchoolID: schoolID,
		Username: strings.TrimSpace(req.Username),
		Name:     strings.TrimSpace(req.Name),
		Status:   model.StudentStatusActive,
	}
}
