package model

type Subject struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name" gorm:"not null;uniqueIndex"` // Math, English, Science, SST
	Color string `json:"color" gorm:"not null"`
}
