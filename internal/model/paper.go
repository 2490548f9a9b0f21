package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Paper struct {
	ID           uint                       `gorm:"primarykey" json:"id"`
	Title        string                     `json:"title" gorm:"not null"`
	SubjectID    uint                       `json:"subject_id" gorm:"not null;index"`
	Subject      Subject                    `json:"-" gorm:"foreignKey:SubjectID"`
	QuestionList datatypes.JSONType[[]uint] `json:"-" gorm:"column:question_ids"`
	CreatedBy    uint                       `json:"created_by" gorm:"not null;index"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
	DeletedAt    gorm.DeletedAt             `gorm:"index" json:"-"`
}

// QuestionIDs returns the paper's questions in the order they are presented.
func (p *Paper) QuestionIDs() []uint {
	return p.QuestionList.Data()
}
