// Package messaging provides the concrete implementation of the SSE broadcaster.
package messaging

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
)

// SessionBroadcaster manages SSE connections for open browsing tabs. Every
// tab of the profile subscribes to the same event stream, so a state change
// made in one tab (an unlock, an admin login, a demo reset) reaches the
// others immediately.
type SessionBroadcaster struct {
	clients []chan string
	mu      sync.Mutex
	logger  *logging.ChanneledLogger
}

var (
	globalBroadcaster *SessionBroadcaster
	once              sync.Once
)

// NewSessionBroadcaster creates the singleton SessionBroadcaster instance.
func NewSessionBroadcaster(logger *logging.ChanneledLogger) *SessionBroadcaster {
	once.Do(func() {
		globalBroadcaster = &SessionBroadcaster{
			clients: make([]chan string, 0),
			logger:  logger,
		}
	})
	return globalBroadcaster
}

// AddClient registers a new SSE client and returns its message channel.
func (b *SessionBroadcaster) AddClient() chan string {
	ch := make(chan string, 10)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.clients = append(b.clients, ch)
	b.logger.SSE().Debug("SSE client registered", "clients", len(b.clients))
	return ch
}

// RemoveClient unregisters an SSE client.
func (b *SessionBroadcaster) RemoveClient(ch chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	newClients := make([]chan string, 0, len(b.clients))
	for _, client := range b.clients {
		if client != ch {
			newClients = append(newClients, client)
		}
	}
	b.clients = newClients
	b.logger.SSE().Debug("SSE client unregistered", "clients", len(b.clients))
}

// ConnectionCount returns the number of subscribed tabs.
func (b *SessionBroadcaster) ConnectionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// BroadcastSessionUpdate notifies all tabs that the visitor session changed.
// The payload carries the new lock state so tabs can re-render without a
// round trip.
func (b *SessionBroadcaster) BroadcastSessionUpdate(unlocked, adminLoggedIn bool) {
	payload, _ := json.Marshal(map[string]bool{
		"unlocked":      unlocked,
		"adminLoggedIn": adminLoggedIn,
	})
	b.broadcast(fmt.Sprintf("event: session_updated\ndata: %s\n\n", payload))
}

// BroadcastCatalogUpdate notifies all tabs that the project catalog changed.
func (b *SessionBroadcaster) BroadcastCatalogUpdate() {
	b.broadcast("event: catalog_updated\ndata: {}\n\n")
}

// BroadcastReset notifies all tabs that the demo was reset to factory state.
func (b *SessionBroadcaster) BroadcastReset() {
	b.broadcast("event: demo_reset\ndata: {}\n\n")
}

func (b *SessionBroadcaster) broadcast(message string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.SSE().Error("Panic recovered in broadcast", "error", r)
		}
	}()

	b.logger.SSE().Debug("Broadcasting to session tabs", "message", strings.ReplaceAll(message, "\n", "\\n"))

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.clients {
		select {
		case ch <- message:
		default:
			b.logger.SSE().Warn("SSE channel full, message dropped")
		}
	}
}
