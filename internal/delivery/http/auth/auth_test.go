package http_auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_auth "github.com/humanbelnik/kinomatch/internal/usecase/auth"
	match_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/matches"
	session_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/session"
	user_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/users"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type HTTPAuthSuite struct {
	suite.Suite
}

type resources struct {
	router   *gin.Engine
	users    *user_mocks.UserRepository
	sessions *session_mocks.SessionService
}

var caller = uuid.MustParse("0b7f8a3e-2c1d-4f6a-9e5b-1a2b3c4d5e6f")

func initResources(t provider.T) *resources {
	r := &resources{
		users:    user_mocks.NewUserRepository(t),
		sessions: session_mocks.NewSessionService(t),
	}
	uc := usecase_auth.New(r.users, match_mocks.NewMatchCreator(t), r.sessions,
		usecase_auth.WithHashCost(bcrypt.MinCost))

	gin.SetMode(gin.TestMode)
	r.router = gin.New()
	New(uc, func(ctx *gin.Context) { http_common.SetUserID(ctx, caller) }).
		RegisterRoutes(r.router.Group("/api/v1"))
	return r
}

func (r *resources) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func (s *HTTPAuthSuite) TestRegister(t provider.T) {
	t.Parallel()

	body := `{"username":"lucia","email":"lucia@example.com","password":"s3cret-pass","firstName":"Lucía","lastName":"Pérez"}`

	t.Run("Should return the user and a token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", mock.Anything, "lucia", "lucia@example.com", uuid.Nil).Return(false, nil).Once()
		r.users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).Return(nil).Once()
		r.sessions.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("jwt", nil).Once()

		w := r.do(http.MethodPost, "/api/v1/auth/register", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"jwt"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Should answer 409 for taken accounts", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", mock.Anything, "lucia", "lucia@example.com", uuid.Nil).Return(true, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/auth/register", body)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Should validate the email", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.do(http.MethodPost, "/api/v1/auth/register",
			`{"username":"lucia","email":"nope","password":"s3cret-pass","firstName":"L","lastName":"P"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *HTTPAuthSuite) TestLogin(t provider.T) {
	r := initResources(t)
	r.users.On("ByEmail", mock.Anything, "lucia@example.com").Return(model.User{}, model.ErrNotFound).Once()

	w := r.do(http.MethodPost, "/api/v1/auth/login", `{"email":"lucia@example.com","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"invalid credentials"}`, w.Body.String())
}

func (s *HTTPAuthSuite) TestLogout(t provider.T) {
	r := initResources(t)
	r.sessions.On("Revoke", "token").Return(nil).Once()

	w := r.do(http.MethodPost, "/api/v1/auth/logout", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func (s *HTTPAuthSuite) TestValidateCode(t provider.T) {
	r := initResources(t)
	r.users.On("ByInvitationCode", mock.Anything, "3F9A0C1B7D2E4A56").
		Return(model.User{ID: caller, Username: "ana", Email: "ana@example.com"}, nil).Once()

	w := r.do(http.MethodPost, "/api/v1/auth/validate-code", `{"invitationCode":"3F9A0C1B7D2E4A56"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ana"`)
	assert.NotContains(t, w.Body.String(), "ana@example.com")
}

func TestHTTPAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(HTTPAuthSuite))
}
