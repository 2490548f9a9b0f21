package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/controller"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/service"
)

type NavigationController struct {
	navigationService service.NavigationService
}

func NewNavigationController(navigationService service.NavigationService) *NavigationController {
	return &NavigationController{navigationService: navigationService}
}

func currentUser(ctx *gin.Context) *model.User {
	if sess := controller.CurrentSession(ctx); sess != nil {
		return sess.User
	}
	return nil
}

// Resolve godoc
// @Summary Resolve a front-end route
// @Description Applies the page guards for the caller. Works without a token.
// @Tags Navigation
// @Produce json
// @Param path query string true "Front-end path, e.g. /dashboard"
// @Success 200 {object} dto.NavigationDecision
// @Router /navigation/resolve [get]
func (c *NavigationController) Resolve(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.navigationService.Resolve(currentUser(ctx), ctx.Query("path")))
}

// Menu godoc
// @Summary Sidebar menu for the caller
// @Tags Navigation
// @Produce json
// @Success 200 {array} dto.MenuItem
// @Router /navigation/menu [get]
func (c *NavigationController) Menu(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.navigationService.Menu(currentUser(ctx)))
}

// RegisterRoutes mounts the navigation routes. api must carry controller.OptionalAuth.
func (c *NavigationController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/navigation/resolve", c.Resolve)
	api.GET("/navigation/menu", c.Menu)
}
