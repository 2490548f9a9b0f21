package model

import "time"

// Session is one signed-in device or client. A user may hold many at once.
type Session struct {
	ID        string     `gorm:"primarykey;size:36" json:"id"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	User      User       `json:"-" gorm:"foreignKey:UserID"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
