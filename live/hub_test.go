package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newHubServer exposes the hub at /{gameId} for tests to dial.
func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("error upgrading: %v", err)
			return
		}
		gameID := strings.TrimPrefix(r.URL.Path, "/")
		hub.Subscribe(gameID, ws)
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("error dialing %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, gameID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(gameID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber count on %s never reached %d. Got: %d", gameID, want, hub.Subscribers(gameID))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	server := newHubServer(t, hub)
	conn := dial(t, server, "G1")
	waitForSubscribers(t, hub, "G1", 1)

	hub.Publish("G1", Update{
		Type:     TypePlayerStat,
		GameID:   "G1",
		PlayerID: "P1",
		Stat:     map[string]int{"kills": 4},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("error reading update: %v", err)
	}

	var got Update
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("error unmarshaling update: %v", err)
	}
	if got.Type != TypePlayerStat {
		t.Errorf("unexpected type: %s", got.Type)
	}
	if got.GameID != "G1" || got.PlayerID != "P1" {
		t.Errorf("unexpected routing fields: %+v", got)
	}
}

func TestHubTopicIsolation(t *testing.T) {
	hub := NewHub()
	server := newHubServer(t, hub)
	g1 := dial(t, server, "G1")
	g2 := dial(t, server, "G2")
	waitForSubscribers(t, hub, "G1", 1)
	waitForSubscribers(t, hub, "G2", 1)

	hub.Publish("G1", Update{Type: TypeTeamStat, GameID: "G1"})

	g1.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := g1.ReadMessage(); err != nil {
		t.Fatalf("G1 subscriber missed its update: %v", err)
	}

	// G2 must stay silent.
	g2.SetReadDeadline(time.Now().Add(250 * time.Millisecond))
	if _, _, err := g2.ReadMessage(); err == nil {
		t.Error("G2 subscriber received an update for G1")
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	server := newHubServer(t, hub)
	conns := []*websocket.Conn{
		dial(t, server, "G1"),
		dial(t, server, "G1"),
		dial(t, server, "G1"),
	}
	waitForSubscribers(t, hub, "G1", 3)

	hub.Publish("G1", Update{Type: TypeTeamStat, GameID: "G1"})

	for i, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Errorf("subscriber %d missed the update: %v", i, err)
		}
	}
}

func TestHubDropsDeadSubscriber(t *testing.T) {
	hub := NewHub()
	server := newHubServer(t, hub)
	conn := dial(t, server, "G1")
	waitForSubscribers(t, hub, "G1", 1)

	conn.Close()

	// The write to the closed connection fails and evicts the subscriber.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers("G1") != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("dead subscriber never evicted. Got: %d", hub.Subscribers("G1"))
		}
		hub.Publish("G1", Update{Type: TypeTeamStat, GameID: "G1"})
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("error upgrading: %v", err)
			return
		}
		sub := hub.Subscribe("G1", ws)
		hub.Unsubscribe("G1", sub)
	}))
	defer server.Close()

	dial(t, server, "G1")

	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers("G1") != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("unsubscribe left the topic populated. Got: %d", hub.Subscribers("G1"))
		}
		time.Sleep(5 * time.Millisecond)
	}
}
