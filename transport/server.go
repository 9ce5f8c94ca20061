// Package transport exposes the hub over websockets: the handshake, the
// per-connection pumps and the health endpoint.
package transport

import (
	"collab-hub/auth"
	"collab-hub/contract"
	"collab-hub/domain/event"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	WebSocketPath = "/ws"
	HealthPath    = "/healthz"
)

type Server struct {
	ctx           context.Context
	log           *slog.Logger
	hub           contract.IHub
	authenticator contract.IAuthenticator
	config        ConnectionConfig
	upgrader      websocket.Upgrader
	wg            sync.WaitGroup
}

// NewServer ties every accepted connection to ctx: cancelling it closes them all.
func NewServer(ctx context.Context, log *slog.Logger, hub contract.IHub, authenticator contract.IAuthenticator, config ConnectionConfig) *Server {
	return &Server{
		ctx:           ctx,
		log:           log.With("component", "transport"),
		hub:           hub,
		authenticator: authenticator,
		config:        config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+WebSocketPath, s.handleUpgrade)
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)
}

// Wait blocks until every accepted connection is closed.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticator.Authenticate(r.Context(), auth.CredentialFromRequest(r))
	if err != nil {
		s.log.Info("Handshake rejected", "remoteAddr", r.RemoteAddr, "error", err)
		s.reject(w, err)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Failed to upgrade connection", "userID", user.ID, "error", err)
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()

	log := s.log.With("userID", user.ID)
	conn := NewConnection(s.ctx, ws, s.config, s.hub.HandleMessage, func(id uuid.UUID, err error) {
		s.hub.Disconnect(id)
		log.Info("Connection closed", "connID", id, "reason", err)
	}, log)

	if err := s.hub.Connect(conn, user); err != nil {
		log.Error("Failed to register connection", "error", err)
		conn.Close(err)
		return
	}
	log.Info("Connection accepted", "connID", conn.ID())
	conn.Run()
	<-conn.Done()
}

// reject answers the handshake before any upgrade, no room state exists for it.
func (s *Server) reject(w http.ResponseWriter, cause error) {
	frame, err := event.Encode(event.Rejection{Message: cause.Error()})
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write(frame)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
		Stats  any    `json:"stats"`
	}{Status: "ok", Stats: s.hub.Stats()})
}
