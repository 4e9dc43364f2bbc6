package usecase_auth

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	match_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/matches"
	session_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/session"
	user_mocks "github.com/humanbelnik/kinomatch/internal/usecase/auth/mocks/auth/users"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type UsecaseAuthUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	users    *user_mocks.UserRepository
	matches  *match_mocks.MatchCreator
	sessions *session_mocks.SessionService
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	users := user_mocks.NewUserRepository(t)
	matches := match_mocks.NewMatchCreator(t)
	sessions := session_mocks.NewSessionService(t)
	return &resources{
		usecase:  New(users, matches, sessions, WithHashCost(bcrypt.MinCost)),
		users:    users,
		matches:  matches,
		sessions: sessions,
		ctx:      context.Background(),
	}
}

func registration() Registration {
	return Registration{
		Username:  "ana",
		Email:     "ana@example.com",
		Password:  "s3cret-pass",
		FirstName: "Ana",
		LastName:  "García",
	}
}

var codeFormat = regexp.MustCompile(`^[0-9A-F]{16}$`)

func (s *UsecaseAuthUnitSuite) TestRegister(t provider.T) {
	t.Parallel()

	t.Run("Should hash the password and issue a token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(false, nil).Once()
		r.users.On("Create", r.ctx, mock.MatchedBy(func(u model.User) bool {
			return codeFormat.MatchString(u.InvitationCode) &&
				bcrypt.CompareHashAndPassword(u.Password, []byte("s3cret-pass")) == nil
		})).Return(nil).Once()
		r.sessions.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("token", nil).Once()

		user, token, err := r.usecase.Register(r.ctx, registration())

		assert.NoError(t, err)
		assert.Equal(t, "token", token)
		assert.Equal(t, "ana", user.Username)
		assert.Regexp(t, codeFormat, user.InvitationCode)
	})

	t.Run("Should create an accepted match with the inviter", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		inviter := uuid.New()
		reg := registration()
		reg.InvitationCode = " 0A1B2C3D4E5F6071 "

		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(false, nil).Once()
		r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(nil).Once()
		r.users.On("ByInvitationCode", r.ctx, "0A1B2C3D4E5F6071").Return(model.User{ID: inviter}, nil).Once()
		r.matches.On("Create", r.ctx, mock.MatchedBy(func(m model.Match) bool {
			return m.User1ID == inviter && m.Status == model.MatchAccepted && m.AcceptedAt != nil
		})).Return(nil).Once()
		r.sessions.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("token", nil).Once()

		_, _, err := r.usecase.Register(r.ctx, reg)

		assert.NoError(t, err)
	})

	t.Run("Should ignore unknown invitation codes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		reg := registration()
		reg.InvitationCode = "FFFFFFFFFFFFFFFF"

		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(false, nil).Once()
		r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(nil).Once()
		r.users.On("ByInvitationCode", r.ctx, "FFFFFFFFFFFFFFFF").Return(model.User{}, model.ErrNotFound).Once()
		r.sessions.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("token", nil).Once()

		_, _, err := r.usecase.Register(r.ctx, reg)

		assert.NoError(t, err)
	})

	t.Run("Should refuse taken username or email", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(true, nil).Once()

		_, _, err := r.usecase.Register(r.ctx, registration())

		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("Should retry on invitation code collision", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(false, nil).Twice()
		r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(model.ErrAlreadyExists).Once()
		r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(nil).Once()
		r.sessions.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("token", nil).Once()

		_, _, err := r.usecase.Register(r.ctx, registration())

		assert.NoError(t, err)
	})

	t.Run("Should give up after repeated collisions", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ExistsByUsernameOrEmail", r.ctx, "ana", "ana@example.com", uuid.Nil).Return(false, nil).Times(4)
		r.users.On("Create", r.ctx, mock.AnythingOfType("model.User")).Return(model.ErrAlreadyExists).Times(3)

		_, _, err := r.usecase.Register(r.ctx, registration())

		assert.ErrorIs(t, err, ErrCodesUnavailable)
	})
}

func (s *UsecaseAuthUnitSuite) TestLogin(t provider.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := model.User{ID: uuid.New(), Email: "ana@example.com", Password: hash}

	testCases := []struct {
		name          string
		password      string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:     "Should log in with the right password",
			password: "s3cret-pass",
			setupMocks: func(r *resources) {
				r.users.On("ByEmail", r.ctx, "ana@example.com").Return(stored, nil).Once()
				r.sessions.On("Issue", stored.ID).Return("token", nil).Once()
			},
		},
		{
			name:     "Should refuse a wrong password",
			password: "guess",
			setupMocks: func(r *resources) {
				r.users.On("ByEmail", r.ctx, "ana@example.com").Return(stored, nil).Once()
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Should not reveal unknown emails",
			password: "s3cret-pass",
			setupMocks: func(r *resources) {
				r.users.On("ByEmail", r.ctx, "ana@example.com").Return(model.User{}, model.ErrNotFound).Once()
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Should wrap storage failures",
			password: "s3cret-pass",
			setupMocks: func(r *resources) {
				r.users.On("ByEmail", r.ctx, "ana@example.com").Return(model.User{}, errors.New("db down")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			user, token, err := r.usecase.Login(r.ctx, "ana@example.com", tc.password)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "token", token)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func (s *UsecaseAuthUnitSuite) TestLogout(t provider.T) {
	r := initResources(t)
	r.sessions.On("Revoke", "token").Return(nil).Once()

	assert.NoError(t, r.usecase.Logout("token"))
}

func (s *UsecaseAuthUnitSuite) TestInvitationCodes(t provider.T) {
	t.Parallel()

	t.Run("Should return the caller's code", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.users.On("ByID", r.ctx, id).Return(model.User{ID: id, InvitationCode: "ABCDEF0123456789"}, nil).Once()

		code, err := r.usecase.InvitationCode(r.ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, "ABCDEF0123456789", code)
	})

	t.Run("Should require a code to validate", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.ValidateCode(r.ctx, "  ")

		assert.ErrorIs(t, err, ErrCodeRequired)
	})

	t.Run("Should reject unknown codes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ByInvitationCode", r.ctx, "NOPE").Return(model.User{}, model.ErrNotFound).Once()

		_, err := r.usecase.ValidateCode(r.ctx, "NOPE")

		assert.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestUsecaseAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseAuthUnitSuite))
}
