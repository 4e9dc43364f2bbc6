package http_auth_middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	validator_mocks "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/auth/mocks/auth/validator"
	session_auth "github.com/humanbelnik/kinomatch/internal/service/auth/session"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type AuthMiddlewareSuite struct {
	suite.Suite
}

func newRouter(m *Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", m.AuthRequired(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, http_common.UserID(ctx).String())
	})
	r.GET("/ws", m.AuthRequiredWS(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, http_common.UserID(ctx).String())
	})
	return r
}

func (s *AuthMiddlewareSuite) TestAuthRequired(t provider.T) {
	t.Parallel()

	userID := uuid.New()

	testCases := []struct {
		name         string
		path         string
		header       string
		setupMocks   func(v *validator_mocks.TokenValidator)
		expectedCode int
	}{
		{
			name:   "Should pass a valid bearer token",
			header: "Bearer good",
			setupMocks: func(v *validator_mocks.TokenValidator) {
				v.On("Validate", "good").Return(userID, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Should accept the token query parameter on the websocket route",
			path: "/ws?token=good",
			setupMocks: func(v *validator_mocks.TokenValidator) {
				v.On("Validate", "good").Return(userID, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Should ignore the token query parameter on API routes",
			path:         "/me?token=good",
			setupMocks:   func(v *validator_mocks.TokenValidator) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Should refuse requests without a token",
			setupMocks:   func(v *validator_mocks.TokenValidator) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Should ignore other schemes",
			header:       "Basic dXNlcjpwYXNz",
			setupMocks:   func(v *validator_mocks.TokenValidator) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Should refuse revoked sessions",
			header: "Bearer old",
			setupMocks: func(v *validator_mocks.TokenValidator) {
				v.On("Validate", "old").Return(uuid.Nil, session_auth.ErrRevoked).Once()
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Should answer 500 when the session store fails",
			header: "Bearer good",
			setupMocks: func(v *validator_mocks.TokenValidator) {
				v.On("Validate", "good").Return(uuid.Nil, errors.Join(session_auth.ErrInternal, errors.New("redis down"))).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			v := validator_mocks.NewTokenValidator(t)
			tc.setupMocks(v)
			router := newRouter(New(v))

			path := tc.path
			if path == "" {
				path = "/me"
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedCode == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.RunSuite(t, new(AuthMiddlewareSuite))
}
