// Package telemetry exposes live simulation state to external observers over
// a websocket endpoint. It is diagnostic plumbing, not part of the physics
// contract: snapshots are throttled copies and slow clients are dropped.
package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Grain is the wire form of one particle.
type Grain struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	C string  `json:"c"` // #rrggbb
}

// Snapshot is one frame of simulation state sent to observers.
type Snapshot struct {
	Count  int     `json:"count"`
	Max    int     `json:"max"`
	Grains []Grain `json:"grains"`
}

// A server application calls the Upgrade method from an HTTP request handler
// to initiate a connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server broadcasts snapshots to every connected websocket client.
type Server struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	srv   *http.Server
}

func NewServer(addr string) *Server {
	s := &Server{
		conns: make(map[*websocket.Conn]struct{}),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving in the background. Listen failures are logged, not
// fatal: the simulation keeps running without telemetry.
func (s *Server) Start() {
	go func() {
		log.Printf("telemetry: listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("telemetry: %v", err)
		}
	}()
}

func (s *Server) Close() {
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()
	s.srv.Close()
}

// Publish encodes the snapshot once and writes it to every client, dropping
// connections that fail.
func (s *Server) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.conns) == 0 {
		return
	}
	msg, err := json.Marshal(snap)
	if err != nil {
		log.Printf("telemetry: encode: %v", err)
		return
	}
	for conn := range s.conns {
		conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

// wsHandler upgrades the http connection to a WebSocket connection and
// registers it for broadcasts.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	go s.readSocket(conn)
}

// readSocket drains incoming messages; observers are read-only so content is
// discarded, but the read loop is what detects a gone peer.
func (s *Server) readSocket(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("telemetry: %v", err)
			}
			return
		}
	}
}
