package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
	"github.com/gorilla/websocket"
)

// Server streams collected events to websocket clients and
// serves a JSON snapshot of the run.
type Server struct {
	mu        sync.Mutex
	collector *EventCollector
	clients   map[*client]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// client is one connected websocket observer. Slow clients are
// dropped rather than allowed to stall the broadcast.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the logger used for connection
// diagnostics.
func WithServerLogger(logger logging.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a monitor server broadcasting the given
// collector's events.
func NewServer(
	addr string,
	collector *EventCollector,
	opts ...ServerOption,
) *Server {
	s := &Server{
		collector: collector,
		clients:   make(map[*client]struct{}),
		addr:      addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	collector.OnEvent(func(event Event) {
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	return s
}

// Handler returns the HTTP handler serving the /ws, /snapshot,
// and /health endpoints. It is exposed so tests can mount it on
// an httptest server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Start begins serving until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWS(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed",
			logging.ErrorField(err),
		)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 32),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	s.logger.Debug("observer connected",
		logging.StringField("remote", conn.RemoteAddr().String()),
	)

	go s.writeLoop(c)
	s.readLoop(c)
}

// writeLoop pushes broadcast frames to one client until its
// send channel closes.
func (s *Server) writeLoop(c *client) {
	for data := range c.send {
		if err := c.conn.WriteMessage(
			websocket.TextMessage, data,
		); err != nil {
			break
		}
	}
	c.conn.Close()
}

// readLoop discards inbound frames; its purpose is detecting
// disconnects.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	s.drop(c)
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	var stalled []*client
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			stalled = append(stalled, c)
		}
	}
	for _, c := range stalled {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()

	if len(stalled) > 0 {
		s.logger.Warn("dropped stalled observers",
			logging.IntField("count", len(stalled)),
		)
	}
}

// Snapshot bundles the run statistics with the events collected
// so far.
type Snapshot struct {
	Stats  CollectorStats `json:"stats"`
	Events []Event        `json:"events"`
}

func (s *Server) handleSnapshot(
	w http.ResponseWriter, _ *http.Request,
) {
	snap := Snapshot{
		Stats:  s.collector.Stats(),
		Events: s.collector.Events(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("failed to encode snapshot",
			logging.ErrorField(err),
		)
	}
}
