package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"reversi/internal/config"
	"reversi/internal/match"
	"reversi/internal/store"
)

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*Hub, *match.Manager, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		SearchDepth: 2,
		AIEnabled:   false, // human vs human keeps the event stream deterministic
		BlackPlayer: "human",
		WhitePlayer: "human",
		Weights:     config.EvalWeights{Mobility: 10, Corner: 50},
	}
	mgr := match.NewManager(store.NewMemoryStore(), cfg)
	hub := NewHub(mgr)
	mgr.SetBroadcaster(hub)
	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, mgr, srv
}

func dialWS(t *testing.T, srv *httptest.Server, code string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?code=" + code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read event: %v", err)
	}
	return env
}

func TestHandleWSInitialState(t *testing.T) {
	_, mgr, srv := newTestServer(t)
	m, err := mgr.CreateMatch("human", "human")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	conn := dialWS(t, srv, m.Code())

	env := readEvent(t, conn)
	if env.Event != "state" {
		t.Fatalf("first event = %q, want state", env.Event)
	}
	var snap match.Snapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("state payload: %v", err)
	}
	if snap.Code != m.Code() || snap.ID == "" {
		t.Fatalf("snapshot identity = %q/%q, want code %q and a non-empty id",
			snap.Code, snap.ID, m.Code())
	}
	if snap.Black != 2 || snap.White != 2 || snap.ToMove != "black" {
		t.Fatalf("initial snapshot %+v is not the opening position", snap)
	}
}

func TestHandleWSUnknownMatchRefused(t *testing.T) {
	_, _, srv := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?code=NOSUCH"
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatalf("dial for an unknown match should fail the handshake")
	}
}

func TestHandleWSMoveBroadcastAndRejectedReply(t *testing.T) {
	_, mgr, srv := newTestServer(t)
	m, err := mgr.CreateMatch("human", "human")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mover := dialWS(t, srv, m.Code())
	watcher := dialWS(t, srv, m.Code())
	readEvent(t, mover)
	readEvent(t, watcher)

	send := func(row, col int) {
		if err := mover.WriteJSON(map[string]interface{}{
			"action": "move",
			"data":   map[string]int{"row": row, "col": col},
		}); err != nil {
			t.Fatalf("send move: %v", err)
		}
	}

	// A legal drop reaches every subscriber.
	send(2, 3)
	for _, conn := range []*websocket.Conn{mover, watcher} {
		env := readEvent(t, conn)
		if env.Event != "move" {
			t.Fatalf("event = %q, want move", env.Event)
		}
		var snap match.Snapshot
		if err := json.Unmarshal(env.Data, &snap); err != nil {
			t.Fatalf("move payload: %v", err)
		}
		if snap.Black != 4 || snap.ToMove != "white" {
			t.Fatalf("broadcast snapshot %+v does not show the applied move", snap)
		}
	}

	// An illegal drop answers the sender only.
	send(0, 0)
	env := readEvent(t, mover)
	if env.Event != "rejected" {
		t.Fatalf("event = %q, want rejected", env.Event)
	}
	_ = watcher.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var stray envelope
	if err := watcher.ReadJSON(&stray); err == nil {
		t.Fatalf("watcher received %q for a rejected drop", stray.Event)
	}
}

func TestHandleWSResetAction(t *testing.T) {
	_, mgr, srv := newTestServer(t)
	m, err := mgr.CreateMatch("human", "human")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	conn := dialWS(t, srv, m.Code())
	readEvent(t, conn)

	mgr.HumanDrop(m, 2, 3)
	readEvent(t, conn) // move broadcast

	if err := conn.WriteJSON(map[string]interface{}{"action": "reset"}); err != nil {
		t.Fatalf("send reset: %v", err)
	}
	env := readEvent(t, conn)
	if env.Event != "reset" {
		t.Fatalf("event = %q, want reset", env.Event)
	}
	var snap match.Snapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("reset payload: %v", err)
	}
	if snap.Black != 2 || snap.White != 2 || snap.ToMove != "black" {
		t.Fatalf("reset snapshot %+v is not the opening position", snap)
	}
}

func TestBroadcastConcurrentWithConnectionWrites(t *testing.T) {
	hub, mgr, srv := newTestServer(t)
	m, err := mgr.CreateMatch("human", "human")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	conn := dialWS(t, srv, m.Code())
	readEvent(t, conn)

	const writers, perWriter = 10, 10
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				hub.Broadcast(m.Code(), "state", m.Snapshot())
			}
		}()
	}
	for i := 0; i < writers*perWriter; i++ {
		if env := readEvent(t, conn); env.Event != "state" {
			t.Fatalf("event = %q, want state", env.Event)
		}
	}
	wg.Wait()
}
