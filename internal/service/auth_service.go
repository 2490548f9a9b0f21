package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/eduportal/config"
	"github.com/lshigami/eduportal/internal/auth"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	PathDashboard   = "/dashboard"
	PathVerifyToken = "/verify-token"
	PathLogin       = "/login"
)

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(req dto.SignupRequest) (*dto.AuthResponse, error)
	Logout(sess *Session) (*dto.MessageResponse, error)
	// Authenticate resolves a bearer token into an active session.
	Authenticate(token string) (*Session, error)
	CurrentUser(sessionID string) (*dto.UserResponse, error)
	VerifySchoolToken(sess *Session, token string) (*dto.VerifyTokenResponse, error)
}

type authService struct {
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	tokens            *auth.TokenManager
	verificationToken string
	now               func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokens *auth.TokenManager,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:          userRepo,
		sessionRepo:       sessionRepo,
		tokens:            tokens,
		verificationToken: cfg.Auth.SchoolVerificationToken,
		now:               time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Login: failed to look up user")
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if err := user.CheckPassword(req.Password); err != nil {
		log.Info().Uint("userID", user.ID).Msg("Login: wrong password")
		return nil, ErrInvalidCredentials
	}

	resp, err := s.openSession(user)
	if err != nil {
		return nil, err
	}
	resp.Next = PathDashboard
	resp.Notification = loginSucceeded(user.Name)
	log.Info().Uint("userID", user.ID).Str("userType", string(user.UserType)).Msg("User logged in")
	return resp, nil
}

func (s *authService) Signup(req dto.SignupRequest) (*dto.AuthResponse, error) {
	userType := model.UserType(req.UserType)
	if userType == "" {
		userType = model.UserTypeIndividual
	}

	user := model.User{
		Email:    normalizeEmail(req.Email),
		Name:     strings.TrimSpace(req.Name),
		UserType: userType,
	}
	if userType == model.UserTypeSchool {
		user.SchoolName = strings.TrimSpace(req.SchoolName)
		if user.SchoolName == "" {
			user.SchoolName = user.Name
		}
		user.LogoURL = req.LogoURL
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Msg("Signup: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	resp, err := s.openSession(&user)
	if err != nil {
		return nil, err
	}
	resp.Next = PathDashboard
	if user.NeedsVerification() {
		resp.Next = PathVerifyToken
	}
	resp.Notification = signupSucceeded(user.Name)
	log.Info().Uint("userID", user.ID).Str("userType", string(user.UserType)).Msg("User signed up")
	return resp, nil
}

func (s *authService) openSession(user *model.User) (*dto.AuthResponse, error) {
	sessionID := uuid.NewString()
	token, expiresAt, err := s.tokens.Generate(sessionID, user.ID, string(user.UserType))
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign session token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	session := model.Session{ID: sessionID, UserID: user.ID, ExpiresAt: expiresAt}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to persist session")
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return &dto.AuthResponse{
		User:      toUserResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) Logout(sess *Session) (*dto.MessageResponse, error) {
	if sess == nil || sess.ID == "" {
		return nil, ErrNotAuthenticated
	}
	if err := s.sessionRepo.Revoke(sess.ID, s.now()); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID).Msg("Logout: failed to revoke session")
		return nil, fmt.Errorf("error revoking session: %w", err)
	}
	log.Info().Uint("userID", sess.UserID()).Msg("User logged out")
	return &dto.MessageResponse{Message: "logged out", Notification: loggedOut()}, nil
}

func (s *authService) Authenticate(token string) (*Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	sess, err := s.loadSession(claims.ID)
	if err != nil {
		return nil, err
	}
	// the token must name the session's own user
	if userID, err := claims.UserID(); err != nil || userID != sess.UserID() {
		log.Warn().Str("sessionID", sess.ID).Str("subject", claims.Subject).Msg("Token subject does not match session user")
		return nil, ErrNotAuthenticated
	}
	return sess, nil
}

func (s *authService) loadSession(sessionID string) (*Session, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}
	if !session.Active(s.now()) {
		return nil, ErrNotAuthenticated
	}
	// Deleted users keep no sessions alive.
	if session.User.ID == 0 {
		return nil, ErrNotAuthenticated
	}
	user := session.User
	return &Session{ID: session.ID, User: &user}, nil
}

func (s *authService) CurrentUser(sessionID string) (*dto.UserResponse, error) {
	sess, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(sess.User)
	return &resp, nil
}

// VerifySchoolToken marks the caller's school as verified when token matches the configured one.
// A wrong token, or a caller that is not a school, gives Verified=false and changes nothing.
func (s *authService) VerifySchoolToken(sess *Session, token string) (*dto.VerifyTokenResponse, error) {
	if sess == nil || sess.User == nil {
		return nil, ErrNotAuthenticated
	}
	user := sess.User

	if !user.IsSchool() || s.verificationToken == "" || token != s.verificationToken {
		log.Info().Uint("userID", user.ID).Msg("School verification rejected")
		return &dto.VerifyTokenResponse{
			Verified:     false,
			User:         toUserResponse(user),
			Notification: verificationRejected(),
		}, nil
	}

	if !user.IsVerified {
		user.IsVerified = true
		if err := s.userRepo.Update(user); err != nil {
			user.IsVerified = false
			log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to persist school verification")
			return nil, fmt.Errorf("error updating user: %w", err)
		}
	}
	log.Info().Uint("userID", user.ID).Msg("School verified")
	return &dto.VerifyTokenResponse{
		Verified:     true,
		User:         toUserResponse(user),
		Next:         PathDashboard,
		Notification: verificationSucceeded(),
	}, nil
}
