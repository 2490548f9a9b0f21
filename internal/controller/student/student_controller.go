package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/controller"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/rs/zerolog/log"
)

// StudentController serves Learning Mode and paper attempts for student accounts.
type StudentController struct {
	paperService    service.PaperService
	attemptService  service.AttemptService
	learningService service.LearningService
}

func NewStudentController(
	paperService service.PaperService,
	attemptService service.AttemptService,
	learningService service.LearningService,
) *StudentController {
	return &StudentController{
		paperService:    paperService,
		attemptService:  attemptService,
		learningService: learningService,
	}
}

// GetPapersBySubject godoc
// @Summary (Student) Papers of a subject
// @Description Each paper says whether the caller attempted it and the score of the latest completed attempt.
// @Tags Student - Papers & Attempts
// @Produce json
// @Security BearerAuth
// @Param subject_id path int true "Subject ID"
// @Success 200 {array} dto.StudentPaperResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Subject ID format"
// @Router /subjects/{subject_id}/papers [get]
func (c *StudentController) GetPapersBySubject(ctx *gin.Context) {
	subjectID, ok := controller.ParseID(ctx, "subject_id")
	if !ok {
		return
	}
	papers, err := c.paperService.GetPapersBySubjectForStudent(controller.CurrentSession(ctx).User, subjectID)
	if err != nil {
		controller.RespondError(ctx, "retrieve papers", err)
		return
	}
	ctx.JSON(http.StatusOK, papers)
}

// StartAttempt godoc
// @Summary (Student) Start an attempt
// @Tags Student - Papers & Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.CreateAttemptRequest true "Paper to attempt"
// @Success 201 {object} dto.AttemptResponse
// @Failure 403 {object} dto.ErrorResponse "Student account is suspended"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /attempts [post]
func (c *StudentController) StartAttempt(ctx *gin.Context) {
	var req dto.CreateAttemptRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	attempt, err := c.attemptService.CreateAttempt(controller.CurrentSession(ctx).User, req.PaperID)
	if err != nil {
		controller.RespondError(ctx, "start attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// CompleteAttempt godoc
// @Summary (Student) Submit answers and complete an attempt
// @Description Answers map question ids to a string or a list of strings. The score is the percentage of the paper's questions answered correctly.
// @Tags Student - Papers & Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param answers body dto.CompleteAttemptRequest true "Answer sheet"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Router /attempts/{attempt_id}/complete [post]
func (c *StudentController) CompleteAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.CompleteAttemptRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	sess := controller.CurrentSession(ctx)
	log.Info().Uint("attemptID", attemptID).Uint("studentID", sess.UserID()).Int("answerCount", len(req.Answers)).Msg("Received attempt completion")

	attempt, err := c.attemptService.CompleteAttempt(ctx.Request.Context(), sess.UserID(), attemptID, req.Answers)
	if err != nil {
		controller.RespondError(ctx, "complete attempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetMyAttempts godoc
// @Summary (Student) My attempts
// @Description Newest first.
// @Tags Student - Papers & Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts/mine [get]
func (c *StudentController) GetMyAttempts(ctx *gin.Context) {
	attempts, err := c.attemptService.GetStudentAttempts(controller.CurrentSession(ctx).UserID())
	if err != nil {
		controller.RespondError(ctx, "retrieve attempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// CheckAnswer godoc
// @Summary (Student) Learning Mode answer check
// @Description Grades one practice answer and returns immediate feedback. Nothing is stored.
// @Tags Student - Learning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.CheckAnswerRequest true "Question and answer"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /learning/check [post]
func (c *StudentController) CheckAnswer(ctx *gin.Context) {
	var req dto.CheckAnswerRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.learningService.CheckAnswer(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "check answer", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts the student routes on an already authenticated group.
func (c *StudentController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("", controller.RequireStudent())
	{
		g.GET("/subjects/:subject_id/papers", c.GetPapersBySubject)
		g.POST("/attempts", c.StartAttempt)
		g.GET("/attempts/mine", c.GetMyAttempts)
		g.POST("/attempts/:attempt_id/complete", c.CompleteAttempt)
		g.POST("/learning/check", c.CheckAnswer)
	}
}
