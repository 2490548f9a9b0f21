package repository

import (
	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByStudent(studentID uint) ([]model.Attempt, error)
	FindByPaper(paperID uint) ([]model.Attempt, error)
	// Complete stores the result of an open attempt. It reports false when the attempt was already completed.
	Complete(attempt *model.Attempt) (bool, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	// Latest attempts first
	if err := r.db.Where("student_id = ?", studentID).Order("start_time desc, id desc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindByPaper(paperID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.db.Where("paper_id = ?", paperID).Order("start_time desc, id desc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) Complete(attempt *model.Attempt) (bool, error) {
	res := r.db.Model(&model.Attempt{}).
		Where("id = ? AND end_time IS NULL", attempt.ID).
		Updates(map[string]interface{}{
			"answers":  attempt.Sheet,
			"end_time": attempt.EndTime,
			"score":    attempt.Score,
			"correct":  attempt.Correct,
			"total":    attempt.Total,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
