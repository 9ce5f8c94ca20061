// Package bridge is the narrow publish surface used by external persistence
// services to inject events into the router.
package bridge

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	_ contract.IPublisher       = (*Publisher)(nil)
	_ contract.IMentionNotifier = (*Publisher)(nil)
)

// Publisher forwards internal events to the emitter. Calls never fail from the
// caller's point of view: a missing destination or a full partition is logged.
type Publisher struct {
	log     *slog.Logger
	emitter contract.IEmitter
	now     func() time.Time
}

func NewPublisher(log *slog.Logger, emitter contract.IEmitter) *Publisher {
	return &Publisher{log: log.With("component", "bridge"), emitter: emitter, now: time.Now}
}

func (p *Publisher) EmitActivityEvent(workspaceID string, activity json.RawMessage) {
	p.emit(event.Activity{
		WorkspaceID: strings.TrimSpace(workspaceID),
		Activity:    activity,
		Timestamp:   p.now().UnixMilli(),
	})
}

// EmitProjectAnalyticsUpdate targets the project room, and the workspace room
// when workspaceID is known.
func (p *Publisher) EmitProjectAnalyticsUpdate(projectID, workspaceID string) {
	p.emit(event.ProjectAnalytics{
		ProjectID:   strings.TrimSpace(projectID),
		WorkspaceID: strings.TrimSpace(workspaceID),
		Timestamp:   p.now().UnixMilli(),
	})
}

func (p *Publisher) EmitTaskAssignmentNotification(userID string, payload json.RawMessage) {
	p.emit(event.TaskAssignment{UserID: strings.TrimSpace(userID), Payload: payload})
}

func (p *Publisher) EmitMentionNotification(notification domain.Notification) {
	p.emit(event.Mention{Notification: notification})
}

func (p *Publisher) emit(out event.Outbound) {
	if err := p.emitter.Emit(uuid.Nil, out); err != nil {
		p.log.Warn("Event not delivered", "event", out.Kind(), "error", err)
	}
}
