package sse

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Hub fans broadcast messages out to every client watching one round.
// Client churn and broadcasts all funnel through the Run loop.
type Hub struct {
	roundID model.RoundID
	clients map[*Client]bool
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub creates a new Hub for a round
func NewHub(roundID model.RoundID, logger *slog.Logger) *Hub {
	return &Hub{
		roundID:    roundID,
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("round_id", string(roundID))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run drives the hub until Close. Runs in its own goroutine, started by
// the HubManager.
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.dropClient(client)
		case message := <-h.broadcast:
			h.fanOut(message)
		case <-h.done:
			h.disconnectAll()
			return
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	remaining := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client registered",
		slog.String("remote_addr", client.remoteAddr),
		slog.Int("total_clients", remaining))
}

func (h *Hub) dropClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	remaining := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client unregistered",
		slog.String("remote_addr", client.remoteAddr),
		slog.Duration("connection_duration", time.Since(client.connectedAt)),
		slog.Int("total_clients", remaining))
}

// fanOut delivers one message to every client. A client whose buffer is
// full misses the message instead of stalling the other watchers.
func (h *Hub) fanOut(message []byte) {
	h.mu.RLock()
	var sent, dropped int
	for client := range h.clients {
		select {
		case client.send <- message:
			sent++
		default:
			dropped++
			h.logger.Warn("sse message dropped - client buffer full",
				slog.String("remote_addr", client.remoteAddr))
		}
	}
	h.mu.RUnlock()

	if dropped > 0 {
		h.logger.Warn("sse broadcast partial failure",
			slog.Int("sent", sent),
			slog.Int("dropped", dropped))
	}
}

func (h *Hub) disconnectAll() {
	h.mu.Lock()
	disconnected := len(h.clients)
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	h.logger.Info("sse hub stopped", slog.Int("disconnected_clients", disconnected))
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a raw message for every connected client. Messages
// are dropped rather than blocking when the hub cannot keep up.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// BroadcastEvent wraps data in SSE framing under the given event name
// and broadcasts it
func (h *Hub) BroadcastEvent(eventName, data string) {
	h.Broadcast(formatSSEMessage(eventName, data))
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage renders the wire form of one event. The SSE spec
// wants every line of the payload carried on its own "data: " line.
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventName)
	b.WriteByte('\n')
	for _, line := range splitLines(data) {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// splitLines breaks the payload on newlines, tolerating CRLF input.
// An empty payload still yields one empty line so the event carries a
// data field.
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			lines = append(lines, current.String())
			current.Reset()
		case '\r':
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// HubManager owns one hub per watched round, created lazily
type HubManager struct {
	hubs   map[model.RoundID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.RoundID]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// GetOrCreateHub returns the round's hub, starting one when the round
// gets its first watcher
func (m *HubManager) GetOrCreateHub(roundID model.RoundID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roundID]; ok {
		return hub
	}

	hub := NewHub(roundID, m.logger)
	m.hubs[roundID] = hub
	go hub.Run()
	return hub
}

// GetHub returns the round's hub, or nil when nobody is watching
func (m *HubManager) GetHub(roundID model.RoundID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[roundID]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(roundID model.RoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roundID]; ok {
		hub.Close()
		delete(m.hubs, roundID)
		m.logger.Info("sse hub removed", slog.String("round_id", string(roundID)))
	}
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removedCount := 0
	for roundID, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, roundID)
			removedCount++
		}
	}
	if removedCount > 0 {
		m.logger.Info("sse empty hubs cleaned up", slog.Int("removed", removedCount))
	}
}
