package bridge

import (
	"collab-hub/contract"
	"collab-hub/errors"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const (
	SecretHeader          = "X-Bridge-Secret"
	ActivityPath          = "/internal/events/activity"
	ProjectAnalyticsPath  = "/internal/events/project-analytics"
	TaskAssignedPath      = "/internal/events/task-assigned"
	maxBridgeRequestBytes = 1 << 20
)

type ActivityRequest struct {
	WorkspaceID string          `json:"workspaceId" validate:"required"`
	Activity    json.RawMessage `json:"activity" validate:"required"`
}

type ProjectAnalyticsRequest struct {
	ProjectID   string `json:"projectId" validate:"required"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}

type TaskAssignedRequest struct {
	UserID  string          `json:"userId" validate:"required"`
	Payload json.RawMessage `json:"payload"`
}

// Handler is the HTTP ingress of the publish surface. Accepted requests are
// answered 202: delivery is attempted, never confirmed.
type Handler struct {
	log       *slog.Logger
	publisher contract.IPublisher
	secret    []byte
	validate  *validator.Validate
}

func NewHandler(log *slog.Logger, publisher contract.IPublisher, secret string) *Handler {
	return &Handler{
		log:       log.With("component", "bridge_http"),
		publisher: publisher,
		secret:    []byte(secret),
		validate:  validator.New(),
	}
}

// RegisterRoutes wires the bridge routes into the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST "+ActivityPath, h.authorized(h.handleActivity))
	mux.HandleFunc("POST "+ProjectAnalyticsPath, h.authorized(h.handleProjectAnalytics))
	mux.HandleFunc("POST "+TaskAssignedPath, h.authorized(h.handleTaskAssigned))
}

func (h *Handler) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		given := []byte(r.Header.Get(SecretHeader))
		if len(h.secret) == 0 || subtle.ConstantTimeCompare(given, h.secret) != 1 {
			h.log.Warn("Rejected bridge call", "path", r.URL.Path, "remoteAddr", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, errors.ErrInvalidBridgeToken)
			return
		}
		next(w, r)
	}
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	var body ActivityRequest
	if !h.decode(w, r, &body) {
		return
	}
	h.publisher.EmitActivityEvent(body.WorkspaceID, body.Activity)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleProjectAnalytics(w http.ResponseWriter, r *http.Request) {
	var body ProjectAnalyticsRequest
	if !h.decode(w, r, &body) {
		return
	}
	h.publisher.EmitProjectAnalyticsUpdate(body.ProjectID, body.WorkspaceID)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleTaskAssigned(w http.ResponseWriter, r *http.Request) {
	var body TaskAssignedRequest
	if !h.decode(w, r, &body) {
		return
	}
	h.publisher.EmitTaskAssignmentNotification(body.UserID, body.Payload)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, body any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBridgeRequestBytes))
	if err == nil {
		err = json.Unmarshal(raw, body)
	}
	if err == nil {
		err = h.validate.Struct(body)
	}
	if err != nil {
		h.log.Debug("Invalid bridge payload", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, errors.NewValidationError(r.URL.Path, err))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
