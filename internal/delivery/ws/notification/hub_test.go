package ws_notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type WSNotificationSuite struct {
	suite.Suite
}

type resources struct {
	hub    *Hub
	server *httptest.Server
	cancel context.CancelFunc
}

// initResources serves the /ws route with a fake auth that reads the
// caller from the "user" query parameter.
func initResources(t provider.T) *resources {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	auth := func(ctx *gin.Context) {
		id, err := uuid.Parse(ctx.Query("user"))
		if err != nil {
			http_common.Abort(ctx, http.StatusUnauthorized, "token required")
			return
		}
		http_common.SetUserID(ctx, id)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewController(hub, auth).RegisterRoutes(router.Group("/api/v1"))

	r := &resources{hub: hub, server: httptest.NewServer(router), cancel: cancel}
	t.Cleanup(func() {
		cancel()
		r.server.Close()
	})
	return r
}

func (r *resources) dial(t provider.T, userID uuid.UUID) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(r.server.URL, "http") + "/api/v1/ws?user=" + userID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return r.hub.Connections(userID) > 0
	}, time.Second, 10*time.Millisecond)
	return conn
}

func (s *WSNotificationSuite) TestPush(t provider.T) {
	t.Parallel()

	t.Run("Should deliver notifications as DTOs", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()
		conn := r.dial(t, userID)

		r.hub.Push(userID, model.Event{Type: model.EventNotification, Payload: model.Notification{
			ID:      uuid.New(),
			UserID:  userID,
			Type:    model.NotificationFriendRequest,
			Title:   "Nueva solicitud",
			Message: "ana quiere ser tu amiga",
		}})

		var got struct {
			Type    string                      `json:"type"`
			Payload http_common.NotificationDTO `json:"payload"`
		}
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, conn.ReadJSON(&got))

		assert.Equal(t, model.EventNotification, got.Type)
		assert.Equal(t, "Nueva solicitud", got.Payload.Title)
		assert.False(t, got.Payload.Read)
	})

	t.Run("Should reach every connection of the user and nobody else", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID, other := uuid.New(), uuid.New()
		first := r.dial(t, userID)
		r.dial(t, userID)
		stranger := r.dial(t, other)

		require.Eventually(t, func() bool {
			return r.hub.Connections(userID) == 2
		}, time.Second, 10*time.Millisecond)

		r.hub.Push(userID, model.Event{Type: model.EventMessage, Payload: model.Message{ID: uuid.New(), Content: "hola"}})

		var got Event
		require.NoError(t, first.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, first.ReadJSON(&got))
		assert.Equal(t, model.EventMessage, got.Type)

		require.NoError(t, stranger.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
		_, _, err := stranger.ReadMessage()
		assert.Error(t, err)
	})

	t.Run("Should ignore users without connections", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		assert.NotPanics(t, func() {
			r.hub.Push(uuid.New(), model.Event{Type: model.EventNotification})
		})
	})
}

func (s *WSNotificationSuite) TestLifecycle(t provider.T) {
	t.Parallel()

	t.Run("Should unregister closed connections", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()
		conn := r.dial(t, userID)

		require.NoError(t, conn.Close())

		assert.Eventually(t, func() bool {
			return r.hub.Connections(userID) == 0
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Should close connections when the hub stops", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()
		conn := r.dial(t, userID)

		r.cancel()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
		assert.Eventually(t, func() bool {
			return r.hub.Connections(userID) == 0
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Should refuse anonymous upgrades", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		url := "ws" + strings.TrimPrefix(r.server.URL, "http") + "/api/v1/ws"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)

		assert.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestWSNotificationSuite(t *testing.T) {
	suite.RunSuite(t, new(WSNotificationSuite))
}
