// Package alerts fans incident notifications out to websocket subscribers.
package alerts

import (
	"encoding/json"
	"sync"

	"github.com/black-vein/oracle/backend/pkg/logger"
)

// Conn is the subset of a websocket connection the hub writes to.
// *websocket.Conn from gorilla satisfies it.
type Conn interface {
	WriteJSON(v any) error
}

// Envelope is the wire format pushed to subscribers.
type Envelope struct {
	Type    string          `json:"type"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// subscriber wraps a connection with its own write lock. Gorilla allows
// a single concurrent writer per connection, so every write to a
// subscriber goes through this mutex.
type subscriber struct {
	mu   sync.Mutex
	conn Conn
}

func (s *subscriber) write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Hub tracks live subscribers and broadcasts incident alerts to them.
// Publishing is fire-and-forget: a dead subscriber is dropped, never retried.
type Hub struct {
	mu          sync.Mutex
	subscribers map[Conn]*subscriber
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[Conn]*subscriber),
	}
}

// Register adds the connection and acknowledges the subscription. The
// subscriber lock is held across insertion so the ack reaches the client
// before any broadcast that races the registration.
func (h *Hub) Register(c Conn) {
	sub := &subscriber{conn: c}
	sub.mu.Lock()
	h.mu.Lock()
	h.subscribers[c] = sub
	h.mu.Unlock()

	err := c.WriteJSON(Envelope{Type: "connected", Message: "Subscribed to incident alerts"})
	sub.mu.Unlock()
	if err != nil {
		h.Unregister(c)
	}
}

// Unregister removes the connection. Removing twice is a no-op.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	delete(h.subscribers, c)
	h.mu.Unlock()
}

// Count reports the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Publish wraps the payload in an incident_alert envelope and writes it to
// every subscriber. A payload that is not valid JSON is forwarded as a raw
// string. Subscribers whose write fails are dropped.
func (h *Hub) Publish(payload string) {
	data := json.RawMessage(payload)
	if !json.Valid(data) {
		quoted, err := json.Marshal(payload)
		if err != nil {
			logger.Error("[Alerts] Failed to encode alert payload", "err", err)
			return
		}
		data = quoted
	}
	envelope := Envelope{Type: "incident_alert", Data: data}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, s := range h.subscribers {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		if err := s.write(envelope); err != nil {
			logger.Debug("[Alerts] Dropping dead subscriber", "err", err)
			h.Unregister(s.conn)
		}
	}
}
