package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"campusmap/internal/models"
	"campusmap/pkg/campusapi"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 8
)

// newUpgrader applies the CORS origin rule to websocket handshakes. Requests
// without an Origin header come from non-browser clients and are accepted.
func newUpgrader(allowAll bool) *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if allowAll || origin == "" {
				return true
			}
			u, err := url.Parse(origin)
			if err != nil || u.Scheme != "http" {
				return false
			}
			switch u.Hostname() {
			case "localhost", "127.0.0.1":
				return true
			}
			return false
		},
	}
}

// Hub fans marker layers out to every connected /ws/layer client. A client
// that falls behind by more than sendBuffer layers is disconnected.
type Hub struct {
	mu      sync.Mutex
	clients map[*layerClient]struct{}
	closed  bool
	logger  *zap.Logger
}

type layerClient struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *layerClient) close() {
	c.once.Do(func() { close(c.send) })
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{clients: make(map[*layerClient]struct{}), logger: logger}
}

// Broadcast queues the layer for every client.
func (h *Hub) Broadcast(markers []models.Marker) {
	msg, err := json.Marshal(campusapi.LayerResponse{Markers: markers})
	if err != nil {
		h.logger.Error("encode layer", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow layer client", zap.String("remote", c.conn.RemoteAddr().String()))
			delete(h.clients, c)
			c.close()
		}
	}
}

// Clients is the number of connected streams.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}

func (h *Hub) register(c *layerClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *layerClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
}

// serve pumps queued layers to conn until the client goes away. The first
// message is the layer current at connect time.
func (h *Hub) serve(conn *websocket.Conn, initial []models.Marker) {
	c := &layerClient{conn: conn, send: make(chan []byte, sendBuffer)}
	if first, err := json.Marshal(campusapi.LayerResponse{Markers: initial}); err == nil {
		c.send <- first
	}
	if !h.register(c) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}

	// Reader: only watches for the peer closing.
	go func() {
		defer h.unregister(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("layer stream read", zap.Error(err))
				}
				return
			}
		}
	}()

	defer conn.Close()
	for msg := range c.send {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("layer stream write", zap.Error(err))
			h.unregister(c)
			return
		}
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) handleLayerStream(w http.ResponseWriter, r *http.Request) {
	layer, err := s.layer(r.Context())
	if err != nil {
		s.internalError(w, "layer stream", err)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("layer stream upgrade", zap.Error(err))
		return
	}
	s.hub.serve(conn, layer)
}
