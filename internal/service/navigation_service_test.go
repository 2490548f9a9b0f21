package service

import (
	"net/http"
	"testing"

	"github.com/lshigami/eduportal/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNavigationResolve(t *testing.T) {
	nav := NewNavigationService()

	unverified := &model.User{ID: 10, UserType: model.UserTypeSchool}
	verified := &model.User{ID: 1, UserType: model.UserTypeSchool, IsVerified: true}
	student := &model.User{ID: 2, UserType: model.UserTypeStudent}
	individual := &model.User{ID: 3, UserType: model.UserTypeIndividual}

	tests := []struct {
		name         string
		user         *model.User
		path         string
		wantView     string
		wantRedirect string
		wantStatus   int
	}{
		{"landing is public", nil, "/", ViewLanding, "", http.StatusOK},
		{"login is public", verified, "/login", ViewLogin, "", http.StatusOK},
		{"anonymous dashboard goes to login", nil, "/dashboard", ViewLogin, "/login", http.StatusFound},
		{"unverified school dashboard goes to verify", unverified, "/dashboard", ViewVerifyToken, "/verify-token", http.StatusFound},
		{"unverified school subpage goes to verify", unverified, "/dashboard/users", ViewVerifyToken, "/verify-token", http.StatusFound},
		{"verified school sees dashboard", verified, "/dashboard", ViewDashboard, "", http.StatusOK},
		{"unverified school may verify", unverified, "/verify-token", ViewVerifyToken, "", http.StatusOK},
		{"verified school leaves verify", verified, "/verify-token", ViewDashboard, "/dashboard", http.StatusFound},
		{"student leaves verify", student, "/verify-token", ViewDashboard, "/dashboard", http.StatusFound},
		{"anonymous verify ends at login", nil, "/verify-token", ViewLogin, "/login", http.StatusFound},
		{"school user management", verified, "/dashboard/users", ViewUserManagement, "", http.StatusOK},
		{"school reports", verified, "/dashboard/reports/", ViewReports, "", http.StatusOK},
		{"student learning", student, "/dashboard/learning", ViewLearning, "", http.StatusOK},
		{"student past papers", student, "/dashboard/past-papers?subject=1", ViewPastPapers, "", http.StatusOK},
		{"student cannot set papers", student, "/dashboard/papers", ViewDashboard, "/dashboard", http.StatusFound},
		{"school cannot take tests", verified, "/dashboard/tests", ViewDashboard, "/dashboard", http.StatusFound},
		{"individual dashboard", individual, "/dashboard", ViewDashboard, "", http.StatusOK},
		{"unknown path", verified, "/nowhere", ViewNotFound, "", http.StatusNotFound},
		{"unknown dashboard page", student, "/dashboard/settings", ViewNotFound, "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nav.Resolve(tt.user, tt.path)
			assert.Equal(t, tt.wantView, got.View)
			assert.Equal(t, tt.wantRedirect, got.RedirectTo)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestNavigationVerificationUnlocksDashboard(t *testing.T) {
	nav := NewNavigationService()
	school := &model.User{ID: 10, UserType: model.UserTypeSchool}

	assert.Equal(t, "/verify-token", nav.Resolve(school, "/dashboard").RedirectTo)
	school.IsVerified = true
	got := nav.Resolve(school, "/dashboard")
	assert.Equal(t, ViewDashboard, got.View)
	assert.Empty(t, got.RedirectTo)
}

func TestNavigationMenu(t *testing.T) {
	nav := NewNavigationService()

	names := func(u *model.User) []string {
		var out []string
		for _, item := range nav.Menu(u) {
			out = append(out, item.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Dashboard", "User Management", "Paper Setting", "Reports"}, names(&model.User{UserType: model.UserTypeSchool}))
	assert.Equal(t, []string{"Dashboard", "Learning Mode", "Test Mode", "Past Papers"}, names(&model.User{UserType: model.UserTypeStudent}))
	assert.Equal(t, []string{"Dashboard"}, names(&model.User{UserType: model.UserTypeIndividual}))
	assert.Empty(t, nav.Menu(nil))
}
