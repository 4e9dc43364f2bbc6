package http_init

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	http_health "github.com/humanbelnik/kinomatch/internal/delivery/http/health"
	http_access_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/access"
	http_cors_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/cors"
	http_metrics_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/metrics"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type HTTPInitSuite struct {
	suite.Suite
}

type echo struct{}

func (echo) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/echo", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
}

func newPool(mode string) http.Handler {
	gin.SetMode(gin.TestMode)
	pool := NewControllerPool(WithMiddleware(
		http_cors_middleware.New("https://kinomatch.app"),
		http_metrics_middleware.Observe(),
		http_access_middleware.ReadOnlyBadGatewayMiddleware(mode),
	))
	pool.Add(http_health.New())
	pool.Add(echo{})
	pool.Register()
	return pool.Handler()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func (s *HTTPInitSuite) TestRoutes(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		mode         string
		method       string
		path         string
		origin       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Should serve health under the API prefix",
			mode:         "RW",
			method:       http.MethodGet,
			path:         "/api/v1/health",
			expectedCode: http.StatusOK,
			expectedBody: `"status":"OK"`,
		},
		{
			name:         "Should let writes through in normal mode",
			mode:         "RW",
			method:       http.MethodPost,
			path:         "/api/v1/echo",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Should refuse writes on a read-only instance",
			mode:         http_access_middleware.ModeReadOnly,
			method:       http.MethodPost,
			path:         "/api/v1/echo",
			expectedCode: http.StatusBadGateway,
			expectedBody: "read-only",
		},
		{
			name:         "Should keep reads on a read-only instance",
			mode:         http_access_middleware.ModeReadOnly,
			method:       http.MethodGet,
			path:         "/api/v1/health",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Should answer preflight requests",
			mode:         "RW",
			method:       http.MethodOptions,
			path:         "/api/v1/echo",
			origin:       "https://kinomatch.app",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Should expose prometheus metrics",
			mode:         "RW",
			method:       http.MethodGet,
			path:         "/api/v1/metrics",
			expectedCode: http.StatusOK,
			expectedBody: "kinomatch_http_requests_total",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			h := newPool(tc.mode)

			// One request first so the metrics vector has a series.
			serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := serve(h, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
			if tc.origin != "" {
				assert.Equal(t, tc.origin, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func (s *HTTPInitSuite) TestAccessLogOmitsQuery(t provider.T) {
	line := accessLogFormatter(gin.LogFormatterParams{
		TimeStamp:  time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		StatusCode: http.StatusSwitchingProtocols,
		Method:     http.MethodGet,
		Path:       "/api/v1/ws?token=eyJhbGciOi.secret",
	})

	assert.Contains(t, line, `"/api/v1/ws"`)
	assert.NotContains(t, line, "token")
	assert.NotContains(t, line, "secret")
}

func TestHTTPInitSuite(t *testing.T) {
	suite.RunSuite(t, new(HTTPInitSuite))
}
