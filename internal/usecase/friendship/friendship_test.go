package usecase_friendship

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	notifier_mocks "github.com/humanbelnik/kinomatch/internal/usecase/friendship/mocks/friendship/notifier"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/friendship/mocks/friendship/repository"
	user_mocks "github.com/humanbelnik/kinomatch/internal/usecase/friendship/mocks/friendship/users"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseFriendshipUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	repo     *repo_mocks.FriendshipRepository
	users    *user_mocks.UserLookup
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	r := &resources{
		repo:     repo_mocks.NewFriendshipRepository(t),
		users:    user_mocks.NewUserLookup(t),
		notifier: notifier_mocks.NewNotifier(t),
		ctx:      context.Background(),
	}
	r.usecase = New(r.repo, r.users, r.notifier)
	return r
}

var (
	alice = uuid.New()
	bob   = uuid.New()
)

func pending(id uuid.UUID) model.Friendship {
	return model.Friendship{ID: id, RequesterID: alice, AddresseeID: bob, Status: model.FriendshipPending}
}

func (s *UsecaseFriendshipUnitSuite) TestRequest(t provider.T) {
	t.Parallel()

	t.Run("Should create a pending request and notify", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
		r.repo.On("Between", r.ctx, alice, bob).Return(model.Friendship{}, model.ErrNotFound).Once()
		r.repo.On("Create", r.ctx, mock.MatchedBy(func(f model.Friendship) bool {
			return f.RequesterID == alice && f.AddresseeID == bob && f.Status == model.FriendshipPending
		})).Return(nil).Once()
		r.users.On("ByID", r.ctx, alice).Return(model.User{Username: "alice"}, nil).Once()
		r.notifier.On("Notify", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
			return n.UserID == bob && n.Message == "alice quiere ser tu amigo"
		})).Return(nil).Once()

		f, err := r.usecase.Request(r.ctx, alice, "bob")

		assert.NoError(t, err)
		assert.Equal(t, model.FriendshipPending, f.Status)
	})

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should report unknown users",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{}, model.ErrNotFound).Once()
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Should refuse yourself",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: alice}, nil).Once()
			},
			expectedError: ErrSelfFriend,
		},
		{
			name: "Should refuse existing friends",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
				r.repo.On("Between", r.ctx, alice, bob).Return(model.Friendship{Status: model.FriendshipAccepted}, nil).Once()
			},
			expectedError: ErrAlreadyFriends,
		},
		{
			name: "Should refuse a second request",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
				r.repo.On("Between", r.ctx, alice, bob).Return(model.Friendship{Status: model.FriendshipPending}, nil).Once()
			},
			expectedError: ErrRequestExists,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			_, err := r.usecase.Request(r.ctx, alice, "bob")

			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func (s *UsecaseFriendshipUnitSuite) TestAnswer(t provider.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("Should accept and notify the requester", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(pending(id), nil).Once()
		r.repo.On("Accept", r.ctx, id, mock.AnythingOfType("time.Time")).Return(nil).Once()
		r.users.On("ByID", r.ctx, bob).Return(model.User{Username: "bob"}, nil).Once()
		r.notifier.On("Notify", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
			return n.UserID == alice && n.Type == model.NotificationFriendAccepted
		})).Return(nil).Once()

		f, err := r.usecase.Accept(r.ctx, bob, id)

		assert.NoError(t, err)
		assert.Equal(t, model.FriendshipAccepted, f.Status)
		assert.NotNil(t, f.AcceptedAt)
	})

	t.Run("Should not accept twice", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		accepted := pending(id)
		accepted.Status = model.FriendshipAccepted
		r.repo.On("ByID", r.ctx, id).Return(accepted, nil).Once()

		_, err := r.usecase.Accept(r.ctx, bob, id)

		assert.ErrorIs(t, err, ErrAlreadyAccepted)
	})

	t.Run("Should not let the requester accept", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(pending(id), nil).Once()

		_, err := r.usecase.Accept(r.ctx, alice, id)

		assert.ErrorIs(t, err, ErrNotAddressee)
	})

	t.Run("Should let the addressee reject", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(pending(id), nil).Once()
		r.repo.On("Delete", r.ctx, id).Return(nil).Once()

		assert.NoError(t, r.usecase.Reject(r.ctx, bob, id))
	})

	t.Run("Should let either side remove", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(pending(id), nil).Once()
		r.repo.On("Delete", r.ctx, id).Return(nil).Once()

		assert.NoError(t, r.usecase.Remove(r.ctx, alice, id))
	})

	t.Run("Should not let outsiders remove", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(pending(id), nil).Once()

		assert.ErrorIs(t, r.usecase.Remove(r.ctx, uuid.New(), id), ErrNotParticipant)
	})

	t.Run("Should report unknown requests", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(model.Friendship{}, model.ErrNotFound).Once()

		assert.ErrorIs(t, r.usecase.Reject(r.ctx, bob, id), ErrRequestNotFound)
	})
}

func TestUsecaseFriendshipSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFriendshipUnitSuite))
}
