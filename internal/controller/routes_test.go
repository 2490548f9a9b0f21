package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/internal/auth"
	"github.com/lshigami/eduportal/internal/controller"
	authctrl "github.com/lshigami/eduportal/internal/controller/auth"
	catalogctrl "github.com/lshigami/eduportal/internal/controller/catalog"
	navctrl "github.com/lshigami/eduportal/internal/controller/navigation"
	schoolctrl "github.com/lshigami/eduportal/internal/controller/school"
	studentctrl "github.com/lshigami/eduportal/internal/controller/student"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/lshigami/eduportal/internal/testutil"
	"github.com/lshigami/eduportal/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	cfg := testutil.Config()
	db := testutil.NewSeededDB(t)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	paperRepo := repository.NewPaperRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	grader := service.NewGrader(service.NewExactTextGrader())
	authService := service.NewAuthService(userRepo, sessionRepo, auth.NewTokenManager(cfg), cfg)
	studentService := service.NewStudentService(studentRepo)
	catalogService := service.NewCatalogService(subjectRepo, questionRepo)
	paperService := service.NewPaperService(paperRepo, questionRepo, subjectRepo, attemptRepo)
	attemptService := service.NewAttemptService(attemptRepo, paperRepo, questionRepo, studentRepo, grader, service.NewScoreConverterService(), cfg)

	r := gin.New()
	api := r.Group("/api/v1")
	authctrl.NewAuthController(authService).RegisterRoutes(api)
	navctrl.NewNavigationController(service.NewNavigationService()).RegisterRoutes(api.Group("", controller.OptionalAuth(authService)))

	authenticated := api.Group("", controller.Authenticate(authService))
	catalogctrl.NewCatalogController(catalogService, paperService).RegisterRoutes(authenticated)
	schoolctrl.NewSchoolController(studentService, paperService, catalogService, attemptService,
		service.NewReportService(paperRepo, attemptRepo)).RegisterRoutes(authenticated)
	studentctrl.NewStudentController(paperService, attemptService,
		service.NewLearningService(questionRepo, grader)).RegisterRoutes(authenticated)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: email, Password: testutil.SeedPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuthResponse
	decode(t, w, &resp)
	return resp.Token
}

func TestAccessRules(t *testing.T) {
	r := newRouter(t)
	school := login(t, r, "admin@school.com")
	student := login(t, r, "student@example.com")
	individual := login(t, r, "individual@example.com")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     interface{}
		wantCode int
	}{
		{"subjects need a token", http.MethodGet, "/api/v1/subjects", "", nil, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/v1/subjects", "nope", nil, http.StatusUnauthorized},
		{"subjects for student", http.MethodGet, "/api/v1/subjects", student, nil, http.StatusOK},
		{"roster for school", http.MethodGet, "/api/v1/students", school, nil, http.StatusOK},
		{"roster for student", http.MethodGet, "/api/v1/students", student, nil, http.StatusForbidden},
		{"roster for individual", http.MethodGet, "/api/v1/students", individual, nil, http.StatusForbidden},
		{"attempts for school", http.MethodPost, "/api/v1/attempts", school, dto.CreateAttemptRequest{PaperID: 1}, http.StatusForbidden},
		{"bad id", http.MethodDelete, "/api/v1/students/abc", school, nil, http.StatusBadRequest},
		{"missing student", http.MethodDelete, "/api/v1/students/999", school, nil, http.StatusNotFound},
		{"missing paper", http.MethodGet, "/api/v1/papers/999", student, nil, http.StatusNotFound},
		{"report", http.MethodGet, "/api/v1/reports/papers/1", school, nil, http.StatusOK},
		{"paper attempts", http.MethodGet, "/api/v1/papers/1/attempts", school, nil, http.StatusOK},
		{"student papers", http.MethodGet, "/api/v1/subjects/1/papers", student, nil, http.StatusOK},
		{"invalid paper", http.MethodPost, "/api/v1/papers", school, dto.CreatePaperRequest{Title: "Mixed", SubjectID: 1, QuestionIDs: []uint{1, 4}}, http.StatusBadRequest},
		{"valid paper", http.MethodPost, "/api/v1/papers", school, dto.CreatePaperRequest{Title: "Primes", SubjectID: 1, QuestionIDs: []uint{2}}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestLoginFailureCarriesNotification(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "admin@school.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Invalid credentials", resp.Message)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Login failed", resp.Notification.Title)
	assert.Equal(t, "destructive", resp.Notification.Variant)
}

func TestRosterValidation(t *testing.T) {
	r := newRouter(t)
	school := login(t, r, "admin@school.com")

	w := do(t, r, http.MethodPost, "/api/v1/students", school, map[string]string{"username": "bad name!"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Invalid request body", resp.Message)
	assert.Contains(t, resp.Fields, "username")
	assert.Equal(t, "name is required", resp.Fields["name"])

	w = do(t, r, http.MethodPost, "/api/v1/students", school, dto.AddStudentRequest{Username: "S004", Name: "Carol King"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var roster []dto.StudentResponse
	decode(t, do(t, r, http.MethodGet, "/api/v1/students", school, nil), &roster)
	assert.Len(t, roster, 4)
}

func TestAttemptFlow(t *testing.T) {
	r := newRouter(t)
	student := login(t, r, "student@example.com")

	w := do(t, r, http.MethodPost, "/api/v1/attempts", student, dto.CreateAttemptRequest{PaperID: 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var started dto.AttemptResponse
	decode(t, w, &started)
	assert.Nil(t, started.EndTime)

	answers := map[string]interface{}{
		"answers": map[string]interface{}{
			"1": "4",
			"2": []string{"2", "5"},
			"3": []string{"2", "3", "3", "4"},
		},
	}
	path := "/api/v1/attempts/" + jsonNumber(started.ID) + "/complete"

	w = do(t, r, http.MethodPost, path, student, answers)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var done dto.AttemptResponse
	decode(t, w, &done)
	require.NotNil(t, done.EndTime)
	require.NotNil(t, done.Score)
	assert.Equal(t, 100.0, *done.Score)

	w = do(t, r, http.MethodPost, path, student, answers)
	assert.Equal(t, http.StatusConflict, w.Code)

	var mine []dto.AttemptResponse
	decode(t, do(t, r, http.MethodGet, "/api/v1/attempts/mine", student, nil), &mine)
	assert.Len(t, mine, 2)
}

func TestLearningCheck(t *testing.T) {
	r := newRouter(t)
	student := login(t, r, "student@example.com")

	tests := []struct {
		name         string
		body         map[string]interface{}
		wantCorrect  bool
		wantFeedback string
	}{
		{"bare string answer", map[string]interface{}{"question_id": 1, "answer": "4"}, true, "Correct! Well done."},
		{"bare string wrong", map[string]interface{}{"question_id": 1, "answer": "5"}, false, "Incorrect. The correct answer is 4."},
		{"checkbox extra option", map[string]interface{}{"question_id": 2, "answer": []string{"2", "5", "9"}}, false, "Some selections were incorrect."},
		{"checkbox exact", map[string]interface{}{"question_id": 2, "answer": []string{"2", "5"}}, true, "Correct! All options selected properly."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/learning/check", student, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var resp dto.CheckAnswerResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantCorrect, resp.Correct)
			assert.Equal(t, tt.wantFeedback, resp.Feedback)
		})
	}

	w := do(t, r, http.MethodPost, "/api/v1/learning/check", student, map[string]interface{}{"question_id": 1, "answer": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchoolVerificationFlow(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/auth/signup", "", dto.SignupRequest{
		Email: "office@newschool.edu", Password: "secret1", Name: "New School", UserType: "school",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var signup dto.AuthResponse
	decode(t, w, &signup)
	assert.Equal(t, "/verify-token", signup.Next)
	token := signup.Token

	var nav dto.NavigationDecision
	decode(t, do(t, r, http.MethodGet, "/api/v1/navigation/resolve?path=/dashboard", token, nil), &nav)
	assert.Equal(t, "/verify-token", nav.RedirectTo)

	w = do(t, r, http.MethodGet, "/api/v1/students", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var verify dto.VerifyTokenResponse
	decode(t, do(t, r, http.MethodPost, "/api/v1/auth/verify-token", token, dto.VerifyTokenRequest{Token: "WRONG"}), &verify)
	assert.False(t, verify.Verified)
	assert.False(t, verify.User.IsVerified)

	decode(t, do(t, r, http.MethodPost, "/api/v1/auth/verify-token", token, dto.VerifyTokenRequest{Token: "VALID_TOKEN"}), &verify)
	assert.True(t, verify.Verified)

	nav = dto.NavigationDecision{}
	decode(t, do(t, r, http.MethodGet, "/api/v1/navigation/resolve?path=/dashboard", token, nil), &nav)
	assert.Equal(t, "dashboard", nav.View)
	assert.Empty(t, nav.RedirectTo)

	var roster []dto.StudentResponse
	w = do(t, r, http.MethodGet, "/api/v1/students", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &roster)
	assert.Empty(t, roster)
}

func TestNavigationWithoutToken(t *testing.T) {
	r := newRouter(t)

	var nav dto.NavigationDecision
	decode(t, do(t, r, http.MethodGet, "/api/v1/navigation/resolve?path=/dashboard", "", nil), &nav)
	assert.Equal(t, "/login", nav.RedirectTo)
	assert.Equal(t, "login", nav.View)

	var menu []dto.MenuItem
	decode(t, do(t, r, http.MethodGet, "/api/v1/navigation/menu", "", nil), &menu)
	assert.Empty(t, menu)
}

func TestLogout(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "individual@example.com")

	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/auth/me", token, nil).Code)

	w := do(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out dto.MessageResponse
	decode(t, w, &out)
	assert.Equal(t, "Logged out", out.Notification.Title)

	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/api/v1/auth/me", token, nil).Code)

	// logging out again still answers 200
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil).Code)
}

func jsonNumber(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
