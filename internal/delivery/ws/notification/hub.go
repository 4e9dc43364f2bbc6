package ws_notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/metrics"
	"github.com/humanbelnik/kinomatch/internal/model"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub fans events out to every open connection of a user. A user may be
// connected from several tabs or devices at once.
type Hub struct {
	logger     *slog.Logger
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		logger:     slog.Default(),
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.userID]; !exists {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true
	metrics.WebsocketConnections.Inc()

	h.logger.Info("client registered", "user_id", client.userID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(client)
}

// remove expects h.mu to be held for writing.
func (h *Hub) remove(client *Client) {
	userClients, exists := h.clients[client.userID]
	if !exists || !userClients[client] {
		return
	}
	delete(userClients, client)
	if len(userClients) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.send)
	metrics.WebsocketConnections.Dec()

	h.logger.Info("client unregistered", "user_id", client.userID)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, userClients := range h.clients {
		for client := range userClients {
			h.remove(client)
		}
	}
}

// Push delivers event to every connection of userID. Clients whose buffer
// is full are disconnected instead of blocking the caller.
func (h *Hub) Push(userID uuid.UUID, event model.Event) {
	wire := toWire(event)

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients[userID] {
		select {
		case client.send <- wire:
		default:
			slow = append(slow, client)
		}
	}
	delivered := len(h.clients[userID]) - len(slow)
	h.mu.RUnlock()

	if delivered > 0 {
		metrics.NotificationsPushed.WithLabelValues(event.Type).Inc()
	}

	if len(slow) == 0 {
		return
	}
	h.mu.Lock()
	for _, client := range slow {
		h.logger.Warn("dropping slow client", "user_id", userID)
		h.remove(client)
	}
	h.mu.Unlock()
}

// Connections returns the number of open connections of userID.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func toWire(event model.Event) Event {
	switch p := event.Payload.(type) {
	case model.Notification:
		return Event{Type: event.Type, Payload: http_common.NewNotificationDTO(p)}
	case model.Message:
		return Event{Type: event.Type, Payload: http_common.NewMessageDTO(p)}
	default:
		return Event{Type: event.Type, Payload: p}
	}
}
