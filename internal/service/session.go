package service

import "github.com/lshigami/eduportal/internal/model"

// Session is the authenticated caller of a request. It replaces any notion of a process-wide current user:
// handlers receive it from the auth middleware and hand it to the services that need it.
type Session struct {
	ID   string
	User *model.User
}

func (s *Session) UserID() uint {
	if s == nil || s.User == nil {
		return 0
	}
	return s.User.ID
}
