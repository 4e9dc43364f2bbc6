package http_user

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_user "github.com/humanbelnik/kinomatch/internal/usecase/user"
	favorite_mocks "github.com/humanbelnik/kinomatch/internal/usecase/user/mocks/user/favorites"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/user/mocks/user/repository"
	storage_mocks "github.com/humanbelnik/kinomatch/internal/usecase/user/mocks/user/storage"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type HTTPUserSuite struct {
	suite.Suite
}

type resources struct {
	router *gin.Engine
	users  *repo_mocks.UserRepository
	images *storage_mocks.ImageStorage
}

var caller = uuid.MustParse("0b7f8a3e-2c1d-4f6a-9e5b-1a2b3c4d5e6f")

// Smallest valid PNG header, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func initResources(t provider.T) *resources {
	r := &resources{
		users:  repo_mocks.NewUserRepository(t),
		images: storage_mocks.NewImageStorage(t),
	}
	uc := usecase_user.New(r.users, favorite_mocks.NewFavoriteLister(t), r.images)

	gin.SetMode(gin.TestMode)
	r.router = gin.New()
	New(uc, func(ctx *gin.Context) { http_common.SetUserID(ctx, caller) }).
		RegisterRoutes(r.router.Group("/api/v1"))
	return r
}

func (r *resources) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func (s *HTTPUserSuite) TestUpdateProfile(t provider.T) {
	t.Parallel()

	current := model.User{ID: caller, Username: "ana"}

	t.Run("Should apply JSON fields", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		bio := "hola"
		r.users.On("ByID", mock.Anything, caller).Return(current, nil).Once()
		r.users.On("Update", mock.Anything, caller, model.ProfileUpdate{Bio: &bio}).
			Return(model.User{ID: caller, Username: "ana", Bio: "hola"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/profile",
			strings.NewReader(`{"bio":"hola","profileImage":"https://evil.example/x.png"}`))
		req.Header.Set("Content-Type", "application/json")
		w := r.serve(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"bio":"hola"`)
	})

	t.Run("Should upload a multipart avatar", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ByID", mock.Anything, caller).Return(current, nil).Once()
		r.images.On("Save", mock.Anything, mock.MatchedBy(func(obj model.FileObject) bool {
			return obj.GetContentType() == "image/png" && obj.GetFilename() == "me.png"
		})).Return("https://cdn.example/profiles/me.png", nil).Once()
		r.users.On("Update", mock.Anything, caller, mock.MatchedBy(func(upd model.ProfileUpdate) bool {
			return upd.ProfileImage != nil && *upd.ProfileImage == "https://cdn.example/profiles/me.png" &&
				upd.FirstName != nil && *upd.FirstName == "Ana"
		})).Return(model.User{ID: caller, ProfileImage: "https://cdn.example/profiles/me.png"}, nil).Once()

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		assert.NoError(t, mw.WriteField("firstName", "Ana"))
		part, err := mw.CreateFormFile("profileImage", "me.png")
		assert.NoError(t, err)
		_, err = part.Write(pngBytes)
		assert.NoError(t, err)
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/profile", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := r.serve(req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should refuse files that are not images", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("profileImage", "notes.txt")
		assert.NoError(t, err)
		_, err = part.Write([]byte("plain text"))
		assert.NoError(t, err)
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/profile", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := r.serve(req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *HTTPUserSuite) TestSearch(t provider.T) {
	t.Parallel()

	t.Run("Should pass the limit through", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("Search", mock.Anything, "an", caller, 5).
			Return([]model.UserSummary{{ID: uuid.New(), Username: "ana"}}, nil).Once()

		w := r.serve(httptest.NewRequest(http.MethodGet, "/api/v1/users/search?q=an&limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"ana"`)
	})

	t.Run("Should require a query", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.serve(httptest.NewRequest(http.MethodGet, "/api/v1/users/search", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPUserSuite(t *testing.T) {
	suite.RunSuite(t, new(HTTPUserSuite))
}
