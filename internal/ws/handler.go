package ws

import (
	"context"
	"net/http"

	"careergps/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// CountSource reports the current visitor count without incrementing it.
type CountSource interface {
	Current(ctx context.Context) int64
}

type Handler struct {
	hub    *Hub
	counts CountSource
	log    logger.Logger
}

func NewHandler(hub *Hub, counts CountSource, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{hub: hub, counts: counts, log: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleVisitors upgrades the connection and pushes the current count
// before any broadcast.
func (h *Handler) HandleVisitors(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("ws upgrade failed", map[string]interface{}{"error": err})
			return
		}

		client := NewClient(h.hub, conn)
		if h.counts != nil {
			if b, err := encodeCount(h.counts.Current(r.Context())); err == nil {
				client.send <- b
			}
		}
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
