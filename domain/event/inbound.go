package event

import (
	"collab-hub/domain"
	"encoding/json"
)

type InboundKind string

const (
	JoinWorkspace    InboundKind = "join-workspace"
	LeaveWorkspace   InboundKind = "leave-workspace"
	JoinPage         InboundKind = "join-page"
	LeavePage        InboundKind = "leave-page"
	JoinProject      InboundKind = "join-project"
	LeaveProject     InboundKind = "leave-project"
	DocumentUpdate   InboundKind = "document-update"
	CursorUpdate     InboundKind = "cursor-update"
	SelectionUpdate  InboundKind = "selection-update"
	WhiteboardUpdate InboundKind = "whiteboard-update"
)

// Inbound is an event sent by a client, decoded once at the transport boundary.
type Inbound interface {
	Kind() InboundKind
}

// RoomChange covers every join-* and leave-* event.
type RoomChange struct {
	Event InboundKind
	Room  domain.RoomID
	Join  bool
}

func (r RoomChange) Kind() InboundKind { return r.Event }

type DocumentUpdated struct {
	PageID string          `json:"pageId" validate:"required"`
	Update json.RawMessage `json:"update" validate:"required"`
}

func (DocumentUpdated) Kind() InboundKind { return DocumentUpdate }

type CursorMoved struct {
	PageID string          `json:"pageId" validate:"required"`
	Cursor json.RawMessage `json:"cursor" validate:"required"`
}

func (CursorMoved) Kind() InboundKind { return CursorUpdate }

type SelectionChanged struct {
	PageID    string          `json:"pageId" validate:"required"`
	Selection json.RawMessage `json:"selection" validate:"required"`
}

func (SelectionChanged) Kind() InboundKind { return SelectionUpdate }

type WhiteboardChanged struct {
	PageID string          `json:"pageId" validate:"required"`
	Stroke json.RawMessage `json:"stroke,omitempty"`
	Action string          `json:"action,omitempty" validate:"omitempty,max=64"`
}

func (WhiteboardChanged) Kind() InboundKind { return WhiteboardUpdate }

type roomRule struct {
	kind  domain.RoomKind
	field string
	join  bool
}

var roomEvents = map[InboundKind]roomRule{
	JoinWorkspace:  {kind: domain.WorkspaceRoom, field: "workspaceId", join: true},
	LeaveWorkspace: {kind: domain.WorkspaceRoom, field: "workspaceId"},
	JoinPage:       {kind: domain.PageRoom, field: "pageId", join: true},
	LeavePage:      {kind: domain.PageRoom, field: "pageId"},
	JoinProject:    {kind: domain.ProjectRoom, field: "projectId", join: true},
	LeaveProject:   {kind: domain.ProjectRoom, field: "projectId"},
}
