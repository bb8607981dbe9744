// Package web mirrors the viewer to a browser: it broadcasts the presented
// frame descriptions and a playback status over a websocket. It is strictly
// read-only; nothing coming from a client mutates viewer state.
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/app"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/render"
)

const broadcastInterval = 100 * time.Millisecond

// Mirror fans the latest frame out to websocket clients.
type Mirror struct {
	mu        sync.RWMutex
	lastFrame render.Frame
	lastStat  app.Snapshot
	dirty     bool

	clients   map[*client]bool
	clientsMu sync.Mutex
	broadcast chan []byte
	upgrader  websocket.Upgrader
	log       *log.Logger
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	mirror *Mirror
}

// Message is one websocket payload: the draw commands plus viewer status.
type Message struct {
	Frame  render.Frame `json:"frame"`
	Status app.Snapshot `json:"status"`
}

// NewMirror creates a mirror that logs through logger.
func NewMirror(logger *log.Logger) *Mirror {
	return &Mirror{
		clients:   make(map[*client]bool),
		broadcast: make(chan []byte, 64),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: logger,
	}
}

// Publish stores the newest frame. Called on the UI loop; it never blocks.
func (m *Mirror) Publish(f render.Frame, stat app.Snapshot) {
	m.mu.Lock()
	m.lastFrame = f
	m.lastStat = stat
	m.dirty = true
	m.mu.Unlock()
}

// Start serves /ws and /api/status on the given port. It blocks, so run it
// on its own goroutine.
func (m *Mirror) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleWebSocket)
	mux.HandleFunc("/api/status", m.handleStatus)

	go m.broadcastLoop()
	go m.publishLoop()

	addr := fmt.Sprintf(":%d", port)
	m.log.Printf("[web] mirror on http://0.0.0.0%s/ws", addr)
	return http.ListenAndServe(addr, mux)
}

func (m *Mirror) handleStatus(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	stat := m.lastStat
	m.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stat)
}

func (m *Mirror) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Printf("[web] websocket upgrade error: %v", err)
		return
	}

	c := &client{
		conn:   conn,
		send:   make(chan []byte, 64),
		mirror: m,
	}

	m.clientsMu.Lock()
	m.clients[c] = true
	m.clientsMu.Unlock()

	go c.writePump()
	go c.readPump()
}

// publishLoop serializes the latest frame at a fixed rate instead of once
// per presented frame, keeping the websocket traffic bounded.
func (m *Mirror) publishLoop() {
	ticker := time.NewTicker(broadcastInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		if !m.dirty {
			m.mu.Unlock()
			continue
		}
		msg := Message{Frame: m.lastFrame, Status: m.lastStat}
		m.dirty = false
		m.mu.Unlock()

		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		select {
		case m.broadcast <- data:
		default:
		}
	}
}

func (m *Mirror) broadcastLoop() {
	for message := range m.broadcast {
		m.clientsMu.Lock()
		for c := range m.clients {
			select {
			case c.send <- message:
			default:
				close(c.send)
				delete(m.clients, c)
			}
		}
		m.clientsMu.Unlock()
	}
}

func (c *client) readPump() {
	defer func() {
		c.mirror.clientsMu.Lock()
		delete(c.mirror.clients, c)
		c.mirror.clientsMu.Unlock()
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
