package events

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// Subscriber receives the messages broadcast on one channel. Outbound is
// buffered; a slow consumer loses messages instead of blocking the hub.
type Subscriber struct {
	ID       uuid.UUID
	Channel  string
	Outbound chan Message
}

// Hub fans bus messages out to in-process subscribers, keyed by channel.
// It is the receiving end of Bus.StartForwarder.
type Hub struct {
	mu   sync.RWMutex
	log  *logger.Logger
	subs map[string]map[*Subscriber]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:  log.With("component", "EventHub"),
		subs: make(map[string]map[*Subscriber]bool),
	}
}

func (h *Hub) Subscribe(channel string) *Subscriber {
	channel = strings.TrimSpace(channel)
	s := &Subscriber{
		ID:       uuid.New(),
		Channel:  channel,
		Outbound: make(chan Message, 16),
	}
	if channel == "" {
		return s
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.subs[channel]
	if !ok {
		clients = make(map[*Subscriber]bool)
		h.subs[channel] = clients
	}
	clients[s] = true
	h.log.Debug("subscriber attached", "subscriber_id", s.ID, "channel", channel)
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.subs[s.Channel]; ok {
		delete(clients, s)
		if len(clients) == 0 {
			delete(h.subs, s.Channel)
		}
	}
	h.log.Debug("subscriber detached", "subscriber_id", s.ID, "channel", s.Channel)
}

func (h *Hub) Broadcast(msg Message) {
	if msg.Channel == "" {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[msg.Channel] {
		select {
		case s.Outbound <- msg:
		default:
			h.log.Warn("dropping event, subscriber buffer full",
				"subscriber_id", s.ID, "event", msg.Event)
		}
	}
}
