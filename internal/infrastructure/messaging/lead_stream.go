package messaging

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// LeadStreamClient represents a single connected back-office dashboard client.
type LeadStreamClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// leadEvent is the message pushed to dashboards when a capture lands.
type leadEvent struct {
	Event string     `json:"event"`
	Lead  leads.Lead `json:"lead"`
	Total int        `json:"total"`
}

// LeadStreamBroadcaster manages connected dashboard clients and pushes each
// newly captured lead to them as it arrives.
type LeadStreamBroadcaster struct {
	clients    map[*LeadStreamClient]bool
	register   chan *LeadStreamClient
	unregister chan *LeadStreamClient
	events     chan []byte
	logger     *logging.ChanneledLogger
	mu         sync.RWMutex
}

// NewLeadStreamBroadcaster creates a new broadcaster instance.
func NewLeadStreamBroadcaster(logger *logging.ChanneledLogger) *LeadStreamBroadcaster {
	return &LeadStreamBroadcaster{
		clients:    make(map[*LeadStreamClient]bool),
		register:   make(chan *LeadStreamClient),
		unregister: make(chan *LeadStreamClient),
		events:     make(chan []byte, config.LeadStreamSendBuffer),
		logger:     logger,
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine.
func (b *LeadStreamBroadcaster) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.Leads().Info("Lead stream client registered", "clients", b.ClientCount())

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Leads().Info("Lead stream client unregistered", "clients", b.ClientCount())

		case message := <-b.events:
			b.mu.RLock()
			for client := range b.clients {
				select {
				case client.Send <- message:
				default:
				}
			}
			b.mu.RUnlock()
		}
	}
}

// Register queues a client for registration.
func (b *LeadStreamBroadcaster) Register(client *LeadStreamClient) {
	b.register <- client
}

// Unregister queues a client for unregistration.
func (b *LeadStreamBroadcaster) Unregister(client *LeadStreamClient) {
	b.unregister <- client
}

// ClientCount returns the number of connected dashboard clients.
func (b *LeadStreamBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// BroadcastLead pushes a freshly captured lead to every connected dashboard.
func (b *LeadStreamBroadcaster) BroadcastLead(lead leads.Lead, total int) {
	message, err := json.Marshal(leadEvent{Event: "lead_captured", Lead: lead, Total: total})
	if err != nil {
		b.logger.Leads().Error("Error marshaling lead event", "error", err.Error())
		return
	}

	select {
	case b.events <- message:
	default:
		b.logger.Leads().Warn("Lead stream event buffer full, event dropped")
	}
}
