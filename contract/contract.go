//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ISender is the write side of one client connection.
// Send never blocks and reports whether the frame was queued.
type ISender interface {
	ID() uuid.UUID
	Send(frame []byte) bool
}

type IAuthenticator interface {
	Authenticate(ctx context.Context, credential string) (domain.User, error)
}

// IUserDirectory resolves user records owned by the persistence services.
type IUserDirectory interface {
	FindUser(ctx context.Context, userID string) (domain.User, error)
}

type INotificationStore interface {
	CreateNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error)
}

// ISuppressionStore holds best-effort mention suppression records.
// Reserve returns false when a record younger than the window exists,
// otherwise it records now and returns true.
type ISuppressionStore interface {
	Reserve(key domain.SuppressionKey, now time.Time) (bool, error)
	Release(key domain.SuppressionKey) error
}

type IMentionProcessor interface {
	Process(ctx context.Context, request domain.MentionRequest) error
}

type IMentionNotifier interface {
	EmitMentionNotification(notification domain.Notification)
}

// IPublisher is the narrow surface external persistence services use to
// inject events. Every call is fire-and-forget.
type IPublisher interface {
	EmitActivityEvent(workspaceID string, activity json.RawMessage)
	EmitProjectAnalyticsUpdate(projectID, workspaceID string)
	EmitTaskAssignmentNotification(userID string, payload json.RawMessage)
}

type IEmitter interface {
	Emit(origin uuid.UUID, out event.Outbound) error
}

// IRoomDirectory resolves the connections currently in a room.
type IRoomDirectory interface {
	Senders(room domain.RoomID) []ISender
}

type IStatsSource interface {
	Stats() domain.HubStats
}

type IHub interface {
	IStatsSource
	Connect(sender ISender, user domain.User) error
	HandleMessage(ctx context.Context, connID uuid.UUID, frame []byte)
	Disconnect(connID uuid.UUID)
}
