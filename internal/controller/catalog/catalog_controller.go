package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/controller"
	"github.com/lshigami/eduportal/internal/service"
)

// CatalogController serves the subject and question catalog to any signed-in user.
// Answer keys are revealed to school accounts only.
type CatalogController struct {
	catalogService service.CatalogService
	paperService   service.PaperService
}

func NewCatalogController(catalogService service.CatalogService, paperService service.PaperService) *CatalogController {
	return &CatalogController{catalogService: catalogService, paperService: paperService}
}

func revealKeys(ctx *gin.Context) bool {
	sess := controller.CurrentSession(ctx)
	return sess != nil && sess.User != nil && sess.User.IsSchool()
}

// GetSubjects godoc
// @Summary List subjects
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubjectResponse
// @Router /subjects [get]
func (c *CatalogController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.catalogService.GetSubjects()
	if err != nil {
		controller.RespondError(ctx, "retrieve subjects", err)
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetQuestionsBySubject godoc
// @Summary Questions of a subject
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject_id path int true "Subject ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{subject_id}/questions [get]
func (c *CatalogController) GetQuestionsBySubject(ctx *gin.Context) {
	subjectID, ok := controller.ParseID(ctx, "subject_id")
	if !ok {
		return
	}
	questions, err := c.catalogService.GetQuestionsBySubject(subjectID, revealKeys(ctx))
	if err != nil {
		controller.RespondError(ctx, "retrieve questions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetPaper godoc
// @Summary Paper with its questions
// @Description Questions come in paper order.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param paper_id path int true "Paper ID"
// @Success 200 {object} dto.PaperDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /papers/{paper_id} [get]
func (c *CatalogController) GetPaper(ctx *gin.Context) {
	paperID, ok := controller.ParseID(ctx, "paper_id")
	if !ok {
		return
	}
	paper, err := c.paperService.GetPaper(paperID, revealKeys(ctx))
	if err != nil {
		controller.RespondError(ctx, "retrieve paper", err)
		return
	}
	ctx.JSON(http.StatusOK, paper)
}

func (c *CatalogController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/subjects", c.GetSubjects)
	api.GET("/subjects/:subject_id/questions", c.GetQuestionsBySubject)
	api.GET("/papers/:paper_id", c.GetPaper)
}
