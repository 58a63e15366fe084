package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"trialboard/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	sendBuffer = 64
)

// Message is the envelope written to WebSocket clients.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Hub fans bus events out to connected WebSocket clients. A client may
// narrow its stream to one trial with the trial_id query parameter.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan events.Event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan events.Event, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Attach subscribes the hub to every topic of the bus. The returned
// function detaches it.
func (h *Hub) Attach(bus *events.Bus) func() {
	return bus.SubscribeAll(func(e events.Event) {
		select {
		case h.broadcast <- e:
		default:
			slog.Warn("websocket broadcast queue full, dropping event", "topic", e.Topic, "id", e.ID)
		}
	})
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Run is the hub's main loop. It closes every client when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.count.Store(0)
			return
		case client := <-h.register:
			h.clients[client] = true
			h.count.Add(1)
			slog.Debug("websocket client connected", "trial", client.trialID)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.count.Add(-1)
				slog.Debug("websocket client disconnected", "trial", client.trialID)
			}
		case e := <-h.broadcast:
			payload, err := json.Marshal(Message{Type: string(e.Topic), Data: e})
			if err != nil {
				slog.Error("marshal websocket event", "topic", e.Topic, "error", err)
				continue
			}
			for client := range h.clients {
				if client.trialID != "" && e.TrialID != "" && client.trialID != e.TrialID {
					continue
				}
				select {
				case client.send <- payload:
				default:
					// Client's send buffer is full, assume disconnected
					close(client.send)
					delete(h.clients, client)
					h.count.Add(-1)
				}
			}
		}
	}
}

// ServeWS upgrades the request and registers the connection.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		trialID: c.Query("trial_id"),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
