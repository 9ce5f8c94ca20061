package transport_test

import (
	"collab-hub/auth"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/mocks"
	"collab-hub/runtime"
	"collab-hub/runtime/workers"
	"collab-hub/transport"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var secret = []byte("test-secret")

type fixture struct {
	server *httptest.Server
	hub    *runtime.Orchestrator
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIUserDirectory(ctrl)
	directory.EXPECT().FindUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, userID string) (domain.User, error) {
		if userID == "ghost" {
			return domain.User{}, errors.ErrUserNotFound
		}
		return domain.User{ID: userID, Name: strings.ToUpper(userID)}, nil
	}).AnyTimes()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx, cancel := context.WithCancel(context.Background())
	hub := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 10*time.Millisecond), runtime.NewRegistry(100), runtime.Settings{
		NumberOfPartitions:  2,
		BufferSize:          64,
		NumberOfTaskWorkers: 1,
		TaskBufferSize:      8,
	})
	go hub.Start(ctx)

	server := transport.NewServer(ctx, log, hub, auth.NewGatekeeper(log, secret, directory), transport.ConnectionConfig{
		BufferSize:      16,
		MaxMessageBytes: 1 << 16,
		PongWait:        time.Minute,
		WriteTimeout:    time.Second,
	})
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)
	httpServer := httptest.NewServer(mux)
	t.Cleanup(func() {
		cancel()
		httpServer.Close()
	})
	return fixture{server: httpServer, hub: hub}
}

func (f fixture) url(query string) string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http") + transport.WebSocketPath + query
}

func (f fixture) dial(t *testing.T, userID string) *websocket.Conn {
	token, err := auth.GenerateToken(secret, "userId", userID, time.Hour)
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(f.url(""), header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func write(t *testing.T, conn *websocket.Conn, kind event.InboundKind, payload any) {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(event.Frame{Event: string(kind), Payload: raw}))
}

func read(t *testing.T, conn *websocket.Conn, kind event.OutboundKind) json.RawMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var frame event.Frame
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Event == string(kind) {
			return frame.Payload
		}
	}
}

func TestServer_Rejects_Invalid_Handshakes(t *testing.T) {
	f := newFixture(t)
	expired, err := auth.GenerateToken(secret, "userId", "alice", -time.Minute)
	require.NoError(t, err)
	ghost, err := auth.GenerateToken(secret, "userId", "ghost", time.Hour)
	require.NoError(t, err)
	forged, err := auth.GenerateToken([]byte("other"), "userId", "alice", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing credential"},
		{name: "garbage", query: "?token=not-a-jwt"},
		{name: "expired", query: "?token=" + expired},
		{name: "forged", query: "?token=" + forged},
		{name: "unknown user", query: "?token=" + ghost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			conn, res, err := websocket.DefaultDialer.Dial(f.url(tt.query), nil)
			req.ErrorIs(err, websocket.ErrBadHandshake)
			req.Nil(conn)
			defer res.Body.Close()

			req.Equal(http.StatusUnauthorized, res.StatusCode)
			body, err := io.ReadAll(res.Body)
			req.NoError(err)
			var frame event.Frame
			req.NoError(json.Unmarshal(body, &frame))
			req.Equal(string(event.ConnectionError), frame.Event)
			req.Contains(string(frame.Payload), "authentication failed")
		})
	}

	require.Zero(t, f.hub.Stats().Connections)
	require.Zero(t, f.hub.Stats().Rooms)
}

func TestServer_Accepts_Query_Token(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	token, err := auth.GenerateToken(secret, "sub", "alice", time.Hour)
	req.NoError(err)

	conn, res, err := websocket.DefaultDialer.Dial(f.url("?token="+token), nil)
	req.NoError(err)
	defer conn.Close()
	req.Equal(http.StatusSwitchingProtocols, res.StatusCode)

	// Then the connection only sits in its own user room
	req.Eventually(func() bool { return f.hub.Stats().Connections == 1 }, time.Second, 5*time.Millisecond)
	req.Equal(1, f.hub.Stats().Rooms)
}

func TestServer_Relays_Between_Clients(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, bob := f.dial(t, "alice"), f.dial(t, "bob")

	// Given both clients in workspace w1 and page p1
	write(t, bob, event.JoinWorkspace, "w1")
	req.JSONEq(`[]`, string(read(t, bob, event.CurrentUsers)))
	write(t, alice, event.JoinWorkspace, map[string]string{"workspaceId": "w1"})
	req.JSONEq(`["bob"]`, string(read(t, alice, event.CurrentUsers)))
	req.JSONEq(`{"userId":"alice","name":"ALICE","avatar":""}`, string(read(t, bob, event.UserJoined)))
	write(t, alice, event.JoinPage, "p1")
	write(t, bob, event.JoinPage, "p1")
	req.Eventually(func() bool { return f.hub.Stats().Rooms == 4 }, time.Second, 5*time.Millisecond)

	// When alice moves her cursor
	write(t, alice, event.CursorUpdate, map[string]any{"pageId": "p1", "cursor": map[string]int{"index": 3}})

	// Then bob sees it
	req.JSONEq(`{"userId":"alice","name":"ALICE","cursor":{"index":3}}`, string(read(t, bob, event.CursorBroadcast)))

	// When alice sends garbage she alone gets an error
	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte(`{"event":"document-update","payload":{}}`)))
	req.Contains(string(read(t, alice, event.Failure)), "validation_error")

	// When alice drops, bob is told she left
	req.NoError(alice.Close())
	req.JSONEq(`{"userId":"alice","name":"ALICE","avatar":""}`, string(read(t, bob, event.UserLeft)))
	req.Eventually(func() bool { return f.hub.Stats().Connections == 1 }, time.Second, 5*time.Millisecond)
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.dial(t, "alice")
	req.Eventually(func() bool { return f.hub.Stats().Connections == 1 }, time.Second, 5*time.Millisecond)

	res, err := http.Get(f.server.URL + transport.HealthPath)
	req.NoError(err)
	defer res.Body.Close()

	var body struct {
		Status string          `json:"status"`
		Stats  domain.HubStats `json:"stats"`
	}
	req.NoError(json.NewDecoder(res.Body).Decode(&body))
	req.Equal("ok", body.Status)
	req.Equal(1, body.Stats.Connections)
}
