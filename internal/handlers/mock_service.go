package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"quizdeck/internal/models"
	"quizdeck/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	parseClaims   *service.TokenClaims
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(username, password string) (string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (*service.TokenClaims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

type mockQuizzes struct {
	summaries []models.QuizSummary
	listErr   error
	quiz      *models.Quiz
	getErr    error
	created   *models.Quiz
	createErr error
	updated   *models.Quiz
	updateErr error
	deleteErr error

	lastGetID       string
	lastCreateTitle string
	lastCreateQs    []models.Question
	lastUpdateID    string
	lastUpdateTitle string
	lastDeleteID    string
	deleteCalls     int
}

func (m *mockQuizzes) List(ctx context.Context) ([]models.QuizSummary, error) {
	return m.summaries, m.listErr
}

func (m *mockQuizzes) Get(ctx context.Context, id string) (*models.Quiz, error) {
	m.lastGetID = id
	return m.quiz, m.getErr
}

func (m *mockQuizzes) Create(ctx context.Context, title string, questions []models.Question) (*models.Quiz, error) {
	m.lastCreateTitle = title
	m.lastCreateQs = questions
	return m.created, m.createErr
}

func (m *mockQuizzes) Update(ctx context.Context, id, title string, questions []models.Question) (*models.Quiz, error) {
	m.lastUpdateID = id
	m.lastUpdateTitle = title
	return m.updated, m.updateErr
}

func (m *mockQuizzes) Delete(ctx context.Context, id string) error {
	m.lastDeleteID = id
	m.deleteCalls++
	return m.deleteErr
}

// userClaims/adminClaims are canonical identities for protected-route tests.
func userClaims() *service.TokenClaims {
	return &service.TokenClaims{UserID: 2, Username: "alice", Role: models.RoleUser}
}

func adminClaims() *service.TokenClaims {
	return &service.TokenClaims{UserID: 1, Username: "admin", Role: models.RoleAdmin}
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
