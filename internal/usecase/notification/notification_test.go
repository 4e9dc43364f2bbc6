package usecase_notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	pusher_mocks "github.com/humanbelnik/kinomatch/internal/usecase/notification/mocks/notification/pusher"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/notification/mocks/notification/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseNotificationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.NotificationRepository
	pusher  *pusher_mocks.Pusher
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewNotificationRepository(t)
	pusher := pusher_mocks.NewPusher(t)
	return &resources{
		usecase: New(repo, pusher),
		repo:    repo,
		pusher:  pusher,
		ctx:     context.Background(),
	}
}

func (s *UsecaseNotificationUnitSuite) TestNotify(t provider.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("Should store and push", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("Create", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
			return n.ID != uuid.Nil && n.UserID == userID && !n.CreatedAt.IsZero() && !n.Read
		})).Return(nil).Once()
		r.pusher.On("Push", userID, mock.MatchedBy(func(e model.Event) bool {
			n, ok := e.Payload.(model.Notification)
			return e.Type == model.EventNotification && ok && n.Type == model.NotificationFriendRequest
		})).Once()

		err := r.usecase.Notify(r.ctx, model.Notification{
			UserID: userID,
			Type:   model.NotificationFriendRequest,
			Read:   true,
		})

		assert.NoError(t, err)
	})

	t.Run("Should not push what was not stored", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("Create", r.ctx, mock.AnythingOfType("model.Notification")).Return(errors.New("db down")).Once()

		err := r.usecase.Notify(r.ctx, model.Notification{UserID: userID})

		assert.ErrorIs(t, err, ErrInternal)
		r.pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
	})
}

func (s *UsecaseNotificationUnitSuite) TestList(t provider.T) {
	r := initResources(t)
	userID := uuid.New()
	r.repo.On("ListLatest", r.ctx, userID, 50).Return([]model.Notification{{UserID: userID}}, nil).Once()

	got, err := r.usecase.List(r.ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func (s *UsecaseNotificationUnitSuite) TestOwnerOnlyOperations(t provider.T) {
	t.Parallel()

	id, userID := uuid.New(), uuid.New()

	testCases := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{name: "Should succeed for the owner"},
		{name: "Should hide foreign notifications", repoErr: model.ErrNotFound, expectedError: ErrNotificationNotFound},
		{name: "Should wrap storage failures", repoErr: errors.New("timeout"), expectedError: ErrInternal},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			r.repo.On("MarkRead", r.ctx, id, userID).Return(tc.repoErr).Once()
			r.repo.On("Delete", r.ctx, id, userID).Return(tc.repoErr).Once()

			readErr := r.usecase.MarkRead(r.ctx, id, userID)
			deleteErr := r.usecase.Delete(r.ctx, id, userID)

			if tc.expectedError == nil {
				assert.NoError(t, readErr)
				assert.NoError(t, deleteErr)
				return
			}
			assert.ErrorIs(t, readErr, tc.expectedError)
			assert.ErrorIs(t, deleteErr, tc.expectedError)
		})
	}
}

func (s *UsecaseNotificationUnitSuite) TestMarkAllRead(t provider.T) {
	r := initResources(t)
	userID := uuid.New()
	r.repo.On("MarkAllRead", r.ctx, userID).Return(int64(3), nil).Once()

	n, err := r.usecase.MarkAllRead(r.ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestUsecaseNotificationSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseNotificationUnitSuite))
}
