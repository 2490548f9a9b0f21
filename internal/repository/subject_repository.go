package repository

import (
	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	FindAll() ([]model.Subject, error)
	FindByID(id uint) (*model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.Order("id asc").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}
