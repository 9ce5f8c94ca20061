package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	MentionNotification        NotificationKind = "mention"
	TaskAssignmentNotification NotificationKind = "task-assigned"
)

// MentionRequest is what the router hands over to the mention extractor
// after a document update has been broadcast.
type MentionRequest struct {
	PageID   string
	AuthorID string
	Update   []byte
	At       time.Time
}

// Notification is a persisted notification as returned by the notification store.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Kind      NotificationKind `json:"type"`
	UserID    string           `json:"userId"`
	ActorID   string           `json:"actorId"`
	PageID    string           `json:"pageId,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

// SuppressionKey identifies a mention suppression record.
type SuppressionKey struct {
	TargetUserID string
	PageID       string
	AuthorID     string
}

func (k SuppressionKey) String() string {
	return k.TargetUserID + ":" + k.PageID + ":" + k.AuthorID
}
