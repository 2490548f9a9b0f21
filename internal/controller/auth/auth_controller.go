package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/controller"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// respondFailure reports a failed auth action together with the toast the client shows for it.
func respondFailure(ctx *gin.Context, action string, err error) {
	status := controller.StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msgf("%s: service error", action)
		message = "An error occurred"
	}
	ctx.JSON(status, dto.ErrorResponse{
		Message:      message,
		Notification: service.FailureNotification(action, err),
	})
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and opens a session. The token goes in the Authorization header as "Bearer <token>".
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.authService.Login(req)
	if err != nil {
		respondFailure(ctx, "Login", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Signup godoc
// @Summary Sign up
// @Description Registers an individual or a school account and opens a session. Schools must verify before using the dashboard.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body dto.SignupRequest true "Account data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.authService.Signup(req)
	if err != nil {
		respondFailure(ctx, "Signup", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session. Always answers 200; a failure only changes the notification.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	resp, err := c.authService.Logout(controller.CurrentSession(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("Logout failed, ignoring")
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out", Notification: service.FailureNotification("Logout", err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	sess := controller.CurrentSession(ctx)
	if sess == nil {
		controller.RespondError(ctx, "get current user", service.ErrNotAuthenticated)
		return
	}
	user, err := c.authService.CurrentUser(sess.ID)
	if err != nil {
		controller.RespondError(ctx, "get current user", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// VerifyToken godoc
// @Summary Verify a school account
// @Description Redeems the school verification token. A wrong token answers verified=false and changes nothing.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token body dto.VerifyTokenRequest true "Verification token"
// @Success 200 {object} dto.VerifyTokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/verify-token [post]
func (c *AuthController) VerifyToken(ctx *gin.Context) {
	var req dto.VerifyTokenRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.authService.VerifySchoolToken(controller.CurrentSession(ctx), req.Token)
	if err != nil {
		respondFailure(ctx, "Verification", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *AuthController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/auth")
	{
		g.POST("/login", c.Login)
		g.POST("/signup", c.Signup)
		g.POST("/logout", controller.OptionalAuth(c.authService), c.Logout)
		g.GET("/me", controller.Authenticate(c.authService), c.Me)
		g.POST("/verify-token", controller.Authenticate(c.authService), c.VerifyToken)
	}
}
