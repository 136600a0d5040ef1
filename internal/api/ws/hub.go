package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"reversi/internal/match"
)

// client wraps a websocket connection with a write lock. gorilla allows
// only one concurrent writer per connection, and both the reader
// goroutine and Broadcast write to it.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub fans match events out to every websocket subscribed to that match,
// and feeds inbound move intents back into the game service.
type Hub struct {
	mu      sync.RWMutex
	matches map[string]map[*client]struct{}
	service GameService
}

func NewHub(service GameService) *Hub {
	return &Hub{
		matches: make(map[string]map[*client]struct{}),
		service: service,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	m, ok := h.service.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	cl := &client{conn: conn}

	h.mu.Lock()
	if _, ok := h.matches[code]; !ok {
		h.matches[code] = make(map[*client]struct{})
	}
	h.matches[code][cl] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.matches[code], cl)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// New subscribers get the current position right away.
	_ = cl.write(map[string]interface{}{
		"event": "state",
		"data":  m.Snapshot(),
	})

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Action {
		case "move":
			h.handleMove(m, msg.Data, cl)
		case "reset":
			h.service.Reset(m)
		default:
			log.Printf("ws: unknown action %q", msg.Action)
		}
	}
}

func (h *Hub) handleMove(m *match.Match, raw json.RawMessage, cl *client) {
	var mv struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
	if err := json.Unmarshal(raw, &mv); err != nil {
		log.Printf("ws: bad move payload: %v", err)
		return
	}
	snap, ok := h.service.HumanDrop(m, mv.Row, mv.Col)
	if !ok {
		// Rejected drops are a no-op for everyone else; only the sender
		// hears about it.
		_ = cl.write(map[string]interface{}{
			"event": "rejected",
			"data":  snap,
		})
	}
}

func (h *Hub) Broadcast(code string, event string, data interface{}) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.matches[code]))
	for cl := range h.matches[code] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"event": event,
		"data":  data,
	}
	var dead []*client
	for _, cl := range clients {
		if err := cl.write(message); err != nil {
			log.Printf("ws write failed: %v", err)
			cl.conn.Close()
			dead = append(dead, cl)
		}
	}
	if len(dead) == 0 {
		return
	}
	h.mu.Lock()
	for _, cl := range dead {
		delete(h.matches[code], cl)
	}
	h.mu.Unlock()
}
