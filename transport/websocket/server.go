package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connectfour-cli/internal/viewmodel"
)

// Server pushes game snapshots to spectators. Spectating is strictly
// read-only: inbound frames are discarded, the read loop exists only to
// notice a disconnect.
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	// writeMu gives each connection its own write lock: WriteMessage is
	// not safe for concurrent use.
	mu      sync.RWMutex
	writeMu map[*websocket.Conn]*sync.Mutex
	latest  []byte
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		writeMu: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start serves /watch until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", that.handleWatch)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Publish stores the snapshot and pushes it to every connected spectator.
func (that *Server) Publish(view viewmodel.GameView) {
	log := that.logger.With("method", "Publish")

	payload, err := json.Marshal(view)
	if err != nil {
		log.Error("failed to marshal game view", "error", err)
		return
	}

	that.mu.Lock()
	that.latest = payload
	conns := make(map[*websocket.Conn]*sync.Mutex, len(that.writeMu))
	for conn, mu := range that.writeMu {
		conns[conn] = mu
	}
	that.mu.Unlock()

	for conn, mu := range conns {
		if err := writeLocked(conn, mu, payload); err != nil {
			log.Info("dropping spectator", "error", err)
			that.remove(conn)
		}
	}
}

func (that *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleWatch")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	mu := that.add(conn)
	defer that.remove(conn)

	log.Info("spectator connected", "remote", conn.RemoteAddr())

	if payload := that.snapshot(); payload != nil {
		if err := writeLocked(conn, mu, payload); err != nil {
			log.Info("spectator gone before first snapshot", "error", err)
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Info("spectator disconnected", "remote", conn.RemoteAddr())
			return
		}
	}
}

func (that *Server) add(conn *websocket.Conn) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	mu := &sync.Mutex{}
	that.writeMu[conn] = mu

	return mu
}

func (that *Server) remove(conn *websocket.Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.writeMu[conn]; ok {
		conn.Close()
		delete(that.writeMu, conn)
	}
}

func (that *Server) snapshot() []byte {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.latest
}

func writeLocked(conn *websocket.Conn, mu *sync.Mutex, payload []byte) error {
	mu.Lock()
	defer mu.Unlock()

	return conn.WriteMessage(websocket.TextMessage, payload)
}
