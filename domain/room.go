package domain

import "strings"

type RoomKind string

const (
	UserRoom      RoomKind = "user"
	WorkspaceRoom RoomKind = "workspace"
	PageRoom      RoomKind = "page"
	ProjectRoom   RoomKind = "project"
)

// RoomID identifies a virtual room. A room exists as long as it has members,
// its existence says nothing about the underlying resource.
type RoomID struct {
	Kind RoomKind
	Key  string
}

func NewRoomID(kind RoomKind, key string) RoomID {
	return RoomID{Kind: kind, Key: strings.TrimSpace(key)}
}

func UserRoomID(userID string) RoomID           { return NewRoomID(UserRoom, userID) }
func WorkspaceRoomID(workspaceID string) RoomID { return NewRoomID(WorkspaceRoom, workspaceID) }
func PageRoomID(pageID string) RoomID           { return NewRoomID(PageRoom, pageID) }
func ProjectRoomID(projectID string) RoomID     { return NewRoomID(ProjectRoom, projectID) }

func (r RoomID) String() string {
	return string(r.Kind) + ":" + r.Key
}

func (r RoomID) IsZero() bool {
	return r.Key == ""
}

func (k RoomKind) Valid() bool {
	switch k {
	case UserRoom, WorkspaceRoom, PageRoom, ProjectRoom:
		return true
	}
	return false
}
