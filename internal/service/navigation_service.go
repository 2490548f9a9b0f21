package service

import (
	"net/http"
	"strings"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
)

const (
	ViewLanding        = "landing"
	ViewLogin          = "login"
	ViewSignup         = "signup"
	ViewVerifyToken    = "verify-token"
	ViewDashboard      = "dashboard"
	ViewUserManagement = "user-management"
	ViewPaperSetting   = "paper-setting"
	ViewReports        = "reports"
	ViewLearning       = "learning"
	ViewTests          = "tests"
	ViewPastPapers     = "past-papers"
	ViewNotFound       = "not-found"
)

// maxRedirects bounds how many guards a single resolution may pass through.
const maxRedirects = 4

type dashboardRoute struct {
	view string
	role model.UserType // empty means any signed-in user
}

var publicRoutes = map[string]string{
	"/":       ViewLanding,
	PathLogin: ViewLogin,
	"/signup": ViewSignup,
}

var dashboardRoutes = map[string]dashboardRoute{
	PathDashboard:            {view: ViewDashboard},
	"/dashboard/users":       {view: ViewUserManagement, role: model.UserTypeSchool},
	"/dashboard/papers":      {view: ViewPaperSetting, role: model.UserTypeSchool},
	"/dashboard/reports":     {view: ViewReports, role: model.UserTypeSchool},
	"/dashboard/learning":    {view: ViewLearning, role: model.UserTypeStudent},
	"/dashboard/tests":       {view: ViewTests, role: model.UserTypeStudent},
	"/dashboard/past-papers": {view: ViewPastPapers, role: model.UserTypeStudent},
}

var menus = map[model.UserType][]dto.MenuItem{
	model.UserTypeSchool: {
		{Name: "Dashboard", Href: PathDashboard},
		{Name: "User Management", Href: "/dashboard/users"},
		{Name: "Paper Setting", Href: "/dashboard/papers"},
		{Name: "Reports", Href: "/dashboard/reports"},
	},
	model.UserTypeStudent: {
		{Name: "Dashboard", Href: PathDashboard},
		{Name: "Learning Mode", Href: "/dashboard/learning"},
		{Name: "Test Mode", Href: "/dashboard/tests"},
		{Name: "Past Papers", Href: "/dashboard/past-papers"},
	},
	model.UserTypeIndividual: {
		{Name: "Dashboard", Href: PathDashboard},
	},
}

type NavigationService interface {
	// Resolve decides what a user visiting path sees. Redirect chains are followed,
	// so RedirectTo and View describe where the user finally lands.
	Resolve(user *model.User, path string) dto.NavigationDecision
	Menu(user *model.User) []dto.MenuItem
}

type navigationService struct{}

func NewNavigationService() NavigationService {
	return &navigationService{}
}

func (s *navigationService) Resolve(user *model.User, path string) dto.NavigationDecision {
	requested := cleanPath(path)
	current := requested
	decision := dto.NavigationDecision{Path: requested}

	for i := 0; i <= maxRedirects; i++ {
		view, redirect, status := guard(user, current)
		if redirect == "" {
			decision.View = view
			decision.Status = status
			if current != requested {
				decision.RedirectTo = current
				decision.Status = http.StatusFound
			}
			return decision
		}
		current = redirect
	}
	// unreachable with the current route table
	decision.View = ViewNotFound
	decision.Status = http.StatusNotFound
	return decision
}

// guard applies the rules for one path and returns either a view or a redirect target.
func guard(user *model.User, path string) (view, redirect string, status int) {
	if view, ok := publicRoutes[path]; ok {
		return view, "", http.StatusOK
	}

	if path == PathVerifyToken {
		if user == nil || !user.NeedsVerification() {
			return "", PathDashboard, 0
		}
		return ViewVerifyToken, "", http.StatusOK
	}

	route, ok := dashboardRoutes[path]
	if !ok {
		return ViewNotFound, "", http.StatusNotFound
	}
	switch {
	case user == nil:
		return "", PathLogin, 0
	case user.NeedsVerification():
		return "", PathVerifyToken, 0
	case route.role != "" && route.role != user.UserType:
		return "", PathDashboard, 0
	}
	return route.view, "", http.StatusOK
}

func cleanPath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func (s *navigationService) Menu(user *model.User) []dto.MenuItem {
	if user == nil {
		return []dto.MenuItem{}
	}
	items, ok := menus[user.UserType]
	if !ok {
		return []dto.MenuItem{}
	}
	out := make([]dto.MenuItem, len(items))
	copy(out, items)
	return out
}
