package repository

import (
	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	CreateBatch(students []model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindBySchool(schoolID uint) ([]model.Student, error)
	FindByUserID(userID uint) (*model.Student, error)
	Update(student *model.Student) error
	Delete(id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

// CreateBatch inserts all students or none.
func (r *studentRepository) CreateBatch(students []model.Student) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&students).Error
	})
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindBySchool(schoolID uint) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Where("school_id = ?", schoolID).Order("id asc").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Student{}, id).Error
}
