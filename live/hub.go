package live

import (
	"encoding/json"
	"sync"
	"time"
	"volley/utils"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Hub keeps the in-process registry of websocket subscribers, one set per
// game topic. Messages are marshaled once and offered to every subscriber;
// a failed write drops that subscriber.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscriber]bool
}

// Subscriber wraps a websocket connection with a write lock so broadcasts
// and control frames never interleave.
type Subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Subscriber]bool)}
}

// Subscribe registers the connection on the game topic and returns the
// subscriber handle used to unsubscribe.
func (h *Hub) Subscribe(gameID string, conn *websocket.Conn) *Subscriber {
	sub := &Subscriber{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[gameID] == nil {
		h.topics[gameID] = make(map[*Subscriber]bool)
	}
	h.topics[gameID][sub] = true
	return sub
}

// Unsubscribe removes the subscriber from the game topic. The caller owns
// closing the connection.
func (h *Hub) Unsubscribe(gameID string, sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(gameID, sub)
}

// Publish implements Publisher.
func (h *Hub) Publish(gameID string, update Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		utils.LogError("Failed to marshal update for game %s: %v", gameID, err)
		return
	}
	h.BroadcastRaw(gameID, payload)
}

// BroadcastRaw delivers a pre-marshaled payload to every subscriber of the
// game topic, dropping any whose write fails.
func (h *Hub) BroadcastRaw(gameID string, payload []byte) {
	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.topics[gameID]))
	for sub := range h.topics[gameID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.write(websocket.TextMessage, payload); err != nil {
			utils.LogWarning("Dropping subscriber on game %s: %v", gameID, err)
			h.mu.Lock()
			h.remove(gameID, sub)
			h.mu.Unlock()
			sub.conn.Close()
		}
	}
}

// Subscribers reports how many connections are on the game topic.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[gameID])
}

// Ping sends a control ping through the subscriber's write lock.
func (s *Subscriber) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait))
}

func (s *Subscriber) write(messageType int, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(messageType, payload)
}

// remove expects h.mu to be held.
func (h *Hub) remove(gameID string, sub *Subscriber) {
	subs := h.topics[gameID]
	if subs == nil {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.topics, gameID)
	}
}
