package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/lshigami/eduportal/internal/validation"
	"github.com/rs/zerolog/log"
)

const sessionKey = "session"

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSchoolNotVerified),
		errors.Is(err, service.ErrStudentSuspended):
		return http.StatusForbidden
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrSubjectNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrPaperNotFound),
		errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAttemptCompleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidPaper),
		errors.Is(err, service.ErrInvalidAnswerKey):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RespondError writes err as an ErrorResponse. Internal errors keep their cause in Details only.
func RespondError(ctx *gin.Context, action string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msgf("%s: service error", action)
		ctx.AbortWithStatusJSON(status, dto.ErrorResponse{Message: "Failed to " + action, Details: []string{err.Error()}})
		return
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(action)
	ctx.AbortWithStatusJSON(status, dto.ErrorResponse{Message: err.Error()})
}

// BindJSON binds the request body into req and answers 400 on failure.
func BindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid request body",
			Details: []string{err.Error()},
			Fields:  validation.FieldErrors(err),
		})
		return false
	}
	return true
}

// ParseID reads a numeric path parameter and answers 400 when it is malformed.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + strings.ReplaceAll(name, "_", " ") + " format"})
		return 0, false
	}
	return uint(id), true
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// Authenticate rejects requests without an active session and stores the session otherwise.
func Authenticate(authSvc service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			RespondError(ctx, "authenticate", service.ErrNotAuthenticated)
			return
		}
		sess, err := authSvc.Authenticate(token)
		if err != nil {
			RespondError(ctx, "authenticate", err)
			return
		}
		ctx.Set(sessionKey, sess)
		ctx.Next()
	}
}

// OptionalAuth stores the session when a valid token is present and lets the request through either way.
func OptionalAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if sess, err := authSvc.Authenticate(token); err == nil {
				ctx.Set(sessionKey, sess)
			}
		}
		ctx.Next()
	}
}

// CurrentSession returns the session stored by Authenticate or OptionalAuth, or nil.
func CurrentSession(ctx *gin.Context) *service.Session {
	v, ok := ctx.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*service.Session)
	return sess
}

// RequireSchool admits verified school accounts only. Must run after Authenticate.
func RequireSchool() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := CurrentSession(ctx)
		switch {
		case sess == nil || sess.User == nil:
			RespondError(ctx, "authorize", service.ErrNotAuthenticated)
			return
		case !sess.User.IsSchool():
			RespondError(ctx, "authorize", service.ErrForbidden)
			return
		case !sess.User.IsVerified:
			RespondError(ctx, "authorize", service.ErrSchoolNotVerified)
			return
		}
		ctx.Next()
	}
}

// RequireStudent admits student accounts only. Must run after Authenticate.
func RequireStudent() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := CurrentSession(ctx)
		if sess == nil || sess.User == nil {
			RespondError(ctx, "authorize", service.ErrNotAuthenticated)
			return
		}
		if !sess.User.IsStudent() {
			RespondError(ctx, "authorize", service.ErrForbidden)
			return
		}
		ctx.Next()
	}
}
