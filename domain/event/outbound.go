package event

import (
	"collab-hub/domain"
	"encoding/json"
)

type OutboundKind string

const (
	UserJoined              OutboundKind = "user-joined"
	UserLeft                OutboundKind = "user-left"
	CurrentUsers            OutboundKind = "current-users"
	DocumentBroadcast       OutboundKind = "document-update"
	CursorBroadcast         OutboundKind = "cursor-update"
	SelectionBroadcast      OutboundKind = "selection-update"
	WhiteboardBroadcast     OutboundKind = "whiteboard-update"
	ActivityUpdated         OutboundKind = "activity-update"
	ProjectAnalyticsUpdated OutboundKind = "project-analytics-update"
	TaskAssigned            OutboundKind = "task-assigned-notification"
	MentionNotified         OutboundKind = "mention-notification"
	Failure                 OutboundKind = "error"
	ConnectionError         OutboundKind = "connection-error"
)

// Outbound is an event emitted by the hub. Fields tagged `json:"-"` only
// carry routing information and never reach the wire.
type Outbound interface {
	Kind() OutboundKind
}

type Presence struct {
	domain.User
	WorkspaceID string `json:"-"`
	Joined      bool   `json:"-"`
}

func (p Presence) Kind() OutboundKind {
	if p.Joined {
		return UserJoined
	}
	return UserLeft
}

type PresenceSnapshot struct {
	WorkspaceID string
	UserIDs     []string
}

func (PresenceSnapshot) Kind() OutboundKind { return CurrentUsers }

func (p PresenceSnapshot) MarshalJSON() ([]byte, error) {
	if p.UserIDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.UserIDs)
}

type DocumentBroadcasted struct {
	PageID             string          `json:"-"`
	Update             json.RawMessage `json:"update"`
	UserID             string          `json:"userId"`
	Timestamp          int64           `json:"timestamp"`
	OriginConnectionID string          `json:"originConnectionId"`
}

func (DocumentBroadcasted) Kind() OutboundKind { return DocumentBroadcast }

type CursorBroadcasted struct {
	PageID string          `json:"-"`
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Cursor json.RawMessage `json:"cursor"`
}

func (CursorBroadcasted) Kind() OutboundKind { return CursorBroadcast }

type SelectionBroadcasted struct {
	PageID    string          `json:"-"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Selection json.RawMessage `json:"selection"`
}

func (SelectionBroadcasted) Kind() OutboundKind { return SelectionBroadcast }

type WhiteboardBroadcasted struct {
	PageID    string          `json:"-"`
	UserID    string          `json:"userId"`
	Stroke    json.RawMessage `json:"stroke,omitempty"`
	Action    string          `json:"action,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

func (WhiteboardBroadcasted) Kind() OutboundKind { return WhiteboardBroadcast }

type Activity struct {
	WorkspaceID string          `json:"-"`
	Activity    json.RawMessage `json:"activity"`
	Timestamp   int64           `json:"timestamp"`
}

func (Activity) Kind() OutboundKind { return ActivityUpdated }

// ProjectAnalytics goes to the project room and, when known, the workspace room.
type ProjectAnalytics struct {
	ProjectID   string `json:"projectId"`
	WorkspaceID string `json:"workspaceId,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

func (ProjectAnalytics) Kind() OutboundKind { return ProjectAnalyticsUpdated }

// TaskAssignment forwards the payload given by the task service untouched.
type TaskAssignment struct {
	UserID  string
	Payload json.RawMessage
}

func (TaskAssignment) Kind() OutboundKind { return TaskAssigned }

func (t TaskAssignment) MarshalJSON() ([]byte, error) {
	if len(t.Payload) == 0 {
		return []byte("{}"), nil
	}
	return t.Payload, nil
}

type Mention struct {
	domain.Notification
}

func (Mention) Kind() OutboundKind { return MentionNotified }

type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (Problem) Kind() OutboundKind { return Failure }

type Rejection struct {
	Message string `json:"message"`
}

func (Rejection) Kind() OutboundKind { return ConnectionError }
