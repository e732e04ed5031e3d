package ws

import (
	"context"
	"sync"

	"careergps/internal/logger"
	"careergps/internal/metrics"
)

// Hub fans visitor-count events out to connected clients. Only Run touches
// the client set for writing; ClientCount reads it under mu.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	// most recent event, replayed to clients on connect
	latest []byte

	events chan []byte
	joins  chan *Client
	leaves chan *Client
	log    logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		events:  make(chan []byte, 1024),
		joins:   make(chan *Client, 128),
		leaves:  make(chan *Client, 128),
		log:     log,
	}
}

// Run serves joins, leaves and events until ctx is done, then closes every
// client.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.joins:
			h.join(c)
		case c := <-h.leaves:
			h.drop(c)
		case msg := <-h.events:
			h.latest = msg
			h.fanOut(msg)
		}
	}
}

func (h *Hub) join(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	if h.latest != nil {
		c.send <- h.latest
	}
	metrics.WebsocketClients.Set(float64(n))
	h.log.Debug("ws connected", map[string]interface{}{"total_clients": n})
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		metrics.WebsocketClients.Set(float64(n))
		h.log.Debug("ws disconnected", map[string]interface{}{"total_clients": n})
	}
}

// fanOut drops clients whose send buffer is full.
func (h *Hub) fanOut(msg []byte) {
	var slow []*Client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.drop(c)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for c := range h.clients {
		close(c.send)
	}
	clear(h.clients)
	h.mu.Unlock()
	metrics.WebsocketClients.Set(0)
}

func (h *Hub) Register(c *Client) {
	if h != nil {
		h.joins <- c
	}
}

func (h *Hub) Unregister(c *Client) {
	if h != nil {
		h.leaves <- c
	}
}

// Broadcast drops the message when the buffer is full.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- msg:
	default:
		h.log.Warn("ws broadcast dropped", map[string]interface{}{"reason": "buffer_full"})
	}
}

// BroadcastCount sends a visitor count event to every client.
func (h *Hub) BroadcastCount(count int64) {
	b, err := encodeCount(count)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
