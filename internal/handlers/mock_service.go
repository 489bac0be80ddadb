package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/storage"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpUser  *models.User
	signUpErr   error
	loginToken  string
	loginUser   *models.User
	loginErr    error
	parseID     int
	parseErr    error

	lastSignUpEmail string
	lastLoginEmail  string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, email, password, name, jobTitle, bio string) (string, *models.User, error) {
	m.lastSignUpEmail = email
	return m.signUpToken, m.signUpUser, m.signUpErr
}
func (m *mockAuth) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginUser, m.loginErr
}
func (m *mockAuth) ParseToken(accessToken string) (int, error) {
	m.lastParseToken = accessToken
	return m.parseID, m.parseErr
}

type mockProfile struct {
	user *models.User
	err  error

	lastUserID  int
	lastUpdate  repository.ProfileUpdate
	updateCalls int
}

func (m *mockProfile) Get(ctx context.Context, userID int) (*models.User, error) {
	m.lastUserID = userID
	return m.user, m.err
}
func (m *mockProfile) Update(ctx context.Context, userID int, upd repository.ProfileUpdate) (*models.User, error) {
	m.lastUserID = userID
	m.lastUpdate = upd
	m.updateCalls++
	return m.user, m.err
}

type mockProjects struct {
	listResp     []models.Project
	listErr      error
	createResp   *models.Project
	createErr    error
	updateResp   *models.Project
	updateErr    error
	deleteErr    error
	portfolio    *models.Portfolio
	portfolioErr error

	lastUserID      int
	lastCreateInput service.ProjectInput
	lastProjectID   int
	lastUpdate      repository.ProjectUpdate
	deleteCalls     int
}

func (m *mockProjects) List(ctx context.Context, userID int) ([]models.Project, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockProjects) Create(ctx context.Context, userID int, in service.ProjectInput) (*models.Project, error) {
	m.lastUserID = userID
	m.lastCreateInput = in
	return m.createResp, m.createErr
}
func (m *mockProjects) Update(ctx context.Context, projectID, userID int, upd repository.ProjectUpdate) (*models.Project, error) {
	m.lastProjectID = projectID
	m.lastUserID = userID
	m.lastUpdate = upd
	return m.updateResp, m.updateErr
}
func (m *mockProjects) Delete(ctx context.Context, projectID, userID int) error {
	m.lastProjectID = projectID
	m.lastUserID = userID
	m.deleteCalls++
	return m.deleteErr
}
func (m *mockProjects) Portfolio(ctx context.Context, userID int) (*models.Portfolio, error) {
	m.lastUserID = userID
	return m.portfolio, m.portfolioErr
}

type mockReset struct {
	requestErr error
	redeemErr  error

	lastRequestEmail   string
	lastRedeemToken    string
	lastRedeemPassword string
}

func (m *mockReset) Request(ctx context.Context, email string) error {
	m.lastRequestEmail = email
	return m.requestErr
}
func (m *mockReset) Redeem(ctx context.Context, token, newPassword string) error {
	m.lastRedeemToken = token
	m.lastRedeemPassword = newPassword
	return m.redeemErr
}

type mockContact struct {
	err error

	lastUserID  int
	lastName    string
	lastEmail   string
	lastMessage string
}

func (m *mockContact) Relay(ctx context.Context, userID int, name, email, message string) error {
	m.lastUserID = userID
	m.lastName = name
	m.lastEmail = email
	m.lastMessage = message
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, store *storage.Store) *gin.Engine {
	h := NewHandler(s, store, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
