package school

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/controller"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/rs/zerolog/log"
)

// SchoolController serves the school dashboard: roster, papers, question authoring and reports.
// Every route runs behind controller.Authenticate and controller.RequireSchool.
type SchoolController struct {
	studentService service.StudentService
	paperService   service.PaperService
	catalogService service.CatalogService
	attemptService service.AttemptService
	reportService  service.ReportService
}

func NewSchoolController(
	studentService service.StudentService,
	paperService service.PaperService,
	catalogService service.CatalogService,
	attemptService service.AttemptService,
	reportService service.ReportService,
) *SchoolController {
	return &SchoolController{
		studentService: studentService,
		paperService:   paperService,
		catalogService: catalogService,
		attemptService: attemptService,
		reportService:  reportService,
	}
}

func schoolID(ctx *gin.Context) uint {
	return controller.CurrentSession(ctx).UserID()
}

// GetStudents godoc
// @Summary (School) List the roster
// @Tags School - Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentResponse
// @Failure 403 {object} dto.ErrorResponse "Not a verified school"
// @Router /students [get]
func (c *SchoolController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetStudents(schoolID(ctx))
	if err != nil {
		controller.RespondError(ctx, "retrieve students", err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// AddStudent godoc
// @Summary (School) Add a student
// @Description Appends one active roster entry. Duplicate usernames are allowed.
// @Tags School - Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body dto.AddStudentRequest true "Roster entry"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /students [post]
func (c *SchoolController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	student, err := c.studentService.AddStudent(schoolID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "add student", err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// BulkUploadStudents godoc
// @Summary (School) Add many students at once
// @Description All entries are created in one transaction, or none are.
// @Tags School - Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roster body dto.BulkUploadStudentsRequest true "Roster entries"
// @Success 201 {array} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /students/bulk [post]
func (c *SchoolController) BulkUploadStudents(ctx *gin.Context) {
	var req dto.BulkUploadStudentsRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	students, err := c.studentService.BulkUploadStudents(schoolID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "upload students", err)
		return
	}
	ctx.JSON(http.StatusCreated, students)
}

// UpdateStudentStatus godoc
// @Summary (School) Activate or suspend a student
// @Tags School - Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Roster entry ID"
// @Param status body dto.UpdateStudentStatusRequest true "New status"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/status [patch]
func (c *SchoolController) UpdateStudentStatus(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	var req dto.UpdateStudentStatusRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	student, err := c.studentService.UpdateStudentStatus(schoolID(ctx), studentID, req.Status)
	if err != nil {
		controller.RespondError(ctx, "update student", err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// RemoveStudent godoc
// @Summary (School) Remove a student
// @Tags School - Students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Roster entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id} [delete]
func (c *SchoolController) RemoveStudent(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	if err := c.studentService.RemoveStudent(schoolID(ctx), studentID); err != nil {
		controller.RespondError(ctx, "remove student", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student removed"})
}

// GetStudentAttempts godoc
// @Summary (School) Attempts of a roster student
// @Tags School - Students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Roster entry ID"
// @Success 200 {array} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/attempts [get]
func (c *SchoolController) GetStudentAttempts(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	attempts, err := c.attemptService.GetRosterStudentAttempts(schoolID(ctx), studentID)
	if err != nil {
		controller.RespondError(ctx, "retrieve attempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// CreateQuestion godoc
// @Summary (School) Author a question
// @Description The answer key must match the question type: choice for objective, choices for checkbox, pairing for dragdrop, text for text.
// @Tags School - Papers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question with its answer key"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or answer key"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /questions [post]
func (c *SchoolController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.catalogService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, "create question", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// CreatePaper godoc
// @Summary (School) Create a paper
// @Description Questions are kept in the given order and must all belong to the paper's subject.
// @Tags School - Papers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param paper body dto.CreatePaperRequest true "Paper data"
// @Success 201 {object} dto.PaperResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid paper"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /papers [post]
func (c *SchoolController) CreatePaper(ctx *gin.Context) {
	var req dto.CreatePaperRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	paper, err := c.paperService.CreatePaper(controller.CurrentSession(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "create paper", err)
		return
	}
	log.Info().Uint("paperID", paper.ID).Msg("School CreatePaper: paper created")
	ctx.JSON(http.StatusCreated, paper)
}

// GetPapers godoc
// @Summary (School) Papers created by the school
// @Tags School - Papers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SchoolPaperResponse
// @Router /papers [get]
func (c *SchoolController) GetPapers(ctx *gin.Context) {
	papers, err := c.paperService.GetPapersBySchool(schoolID(ctx))
	if err != nil {
		controller.RespondError(ctx, "retrieve papers", err)
		return
	}
	ctx.JSON(http.StatusOK, papers)
}

// GetPaperAttempts godoc
// @Summary (School) Attempts on one of the school's papers
// @Tags School - Reports
// @Produce json
// @Security BearerAuth
// @Param paper_id path int true "Paper ID"
// @Success 200 {array} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /papers/{paper_id}/attempts [get]
func (c *SchoolController) GetPaperAttempts(ctx *gin.Context) {
	paperID, ok := controller.ParseID(ctx, "paper_id")
	if !ok {
		return
	}
	attempts, err := c.attemptService.GetAttemptsByPaper(schoolID(ctx), paperID)
	if err != nil {
		controller.RespondError(ctx, "retrieve attempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetPaperReport godoc
// @Summary (School) Score summary of a paper
// @Tags School - Reports
// @Produce json
// @Security BearerAuth
// @Param paper_id path int true "Paper ID"
// @Success 200 {object} dto.PaperReportResponse
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /reports/papers/{paper_id} [get]
func (c *SchoolController) GetPaperReport(ctx *gin.Context) {
	paperID, ok := controller.ParseID(ctx, "paper_id")
	if !ok {
		return
	}
	report, err := c.reportService.PaperReport(schoolID(ctx), paperID)
	if err != nil {
		controller.RespondError(ctx, "build report", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// RegisterRoutes mounts the school routes on an already authenticated group.
func (c *SchoolController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("", controller.RequireSchool())
	{
		g.GET("/students", c.GetStudents)
		g.POST("/students", c.AddStudent)
		g.POST("/students/bulk", c.BulkUploadStudents)
		g.PATCH("/students/:student_id/status", c.UpdateStudentStatus)
		g.DELETE("/students/:student_id", c.RemoveStudent)
		g.GET("/students/:student_id/attempts", c.GetStudentAttempts)

		g.POST("/questions", c.CreateQuestion)
		g.POST("/papers", c.CreatePaper)
		g.GET("/papers", c.GetPapers)
		g.GET("/papers/:paper_id/attempts", c.GetPaperAttempts)
		g.GET("/reports/papers/:paper_id", c.GetPaperReport)
	}
}
