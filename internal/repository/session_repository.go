package repository

import (
	"time"

	"github.com/lshigami/eduportal/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	// Revoke marks the session revoked. Revoking an already revoked session is a no-op.
	Revoke(id string, at time.Time) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.Preload("User").Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Revoke(id string, at time.Time) error {
	return r.db.Model(&model.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
