package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trialboard/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHub(t *testing.T) (*Hub, *events.Bus, *httptest.Server) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	bus := events.NewBus()
	t.Cleanup(hub.Attach(bus))
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, bus, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastsBusEvents(t *testing.T) {
	hub, bus, srv := setupHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	bus.Publish(events.Event{Topic: events.TopicSectionChanged, TrialID: "t1", Payload: "timeline"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string       `json:"type"`
		Data events.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "section.changed", msg.Type)
	assert.Equal(t, "t1", msg.Data.TrialID)
	assert.Equal(t, "timeline", msg.Data.Payload)
}

func TestHub_FiltersByTrial(t *testing.T) {
	hub, bus, srv := setupHub(t)
	conn := dial(t, srv, "?trial_id=t2")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	bus.Publish(events.Event{Topic: events.TopicBoardChanged, TrialID: "t1"})
	bus.Publish(events.Event{Topic: events.TopicBoardChanged, TrialID: "t2"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"trial_id":"t2"`)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, _, srv := setupHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
