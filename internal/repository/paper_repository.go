package repository

import (
	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

// PaperWithAttemptCount is a paper row plus the number of attempts made on it.
type PaperWithAttemptCount struct {
	model.Paper
	AttemptCount int
}

type PaperRepository interface {
	Create(paper *model.Paper) error
	FindByID(id uint) (*model.Paper, error)
	FindByCreatorWithAttemptCount(creatorID uint) ([]PaperWithAttemptCount, error)
	FindBySubject(subjectID uint) ([]model.Paper, error)
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(paper *model.Paper) error {
	return r.db.Create(paper).Error
}

func (r *paperRepository) FindByID(id uint) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.First(&paper, id).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) FindByCreatorWithAttemptCount(creatorID uint) ([]PaperWithAttemptCount, error) {
	var results []PaperWithAttemptCount
	err := r.db.Model(&model.Paper{}).
		Select("papers.*, (SELECT COUNT(*) FROM attempts WHERE attempts.paper_id = papers.id AND attempts.deleted_at IS NULL) as attempt_count").
		Where("papers.created_by = ? AND papers.deleted_at IS NULL", creatorID).
		Order("papers.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *paperRepository) FindBySubject(subjectID uint) ([]model.Paper, error) {
	var papers []model.Paper
	if err := r.db.Where("subject_id = ?", subjectID).Order("created_at desc").Find(&papers).Error; err != nil {
		return nil, err
	}
	return papers, nil
}
