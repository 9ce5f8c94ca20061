package runtime

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
)

// route is the fixed destination rule of one outbound event kind.
type route struct {
	rooms         func(out event.Outbound) []domain.RoomID
	excludeOrigin bool
	// direct delivers to the origin connection only, through the room's
	// partition so it stays ordered with the room's other events.
	direct bool
}

var catalog = map[event.OutboundKind]route{
	event.DocumentBroadcast:       {rooms: pageRoom, excludeOrigin: true},
	event.CursorBroadcast:         {rooms: pageRoom, excludeOrigin: true},
	event.SelectionBroadcast:      {rooms: pageRoom, excludeOrigin: true},
	event.WhiteboardBroadcast:     {rooms: pageRoom, excludeOrigin: true},
	event.UserJoined:              {rooms: workspaceRoom, excludeOrigin: true},
	event.UserLeft:                {rooms: workspaceRoom, excludeOrigin: true},
	event.CurrentUsers:            {rooms: workspaceRoom, direct: true},
	event.ActivityUpdated:         {rooms: workspaceRoom},
	event.ProjectAnalyticsUpdated: {rooms: projectAndWorkspaceRooms},
	event.TaskAssigned:            {rooms: targetUserRoom},
	event.MentionNotified:         {rooms: targetUserRoom},
}

func pageRoom(out event.Outbound) []domain.RoomID {
	switch e := out.(type) {
	case event.DocumentBroadcasted:
		return []domain.RoomID{domain.PageRoomID(e.PageID)}
	case event.CursorBroadcasted:
		return []domain.RoomID{domain.PageRoomID(e.PageID)}
	case event.SelectionBroadcasted:
		return []domain.RoomID{domain.PageRoomID(e.PageID)}
	case event.WhiteboardBroadcasted:
		return []domain.RoomID{domain.PageRoomID(e.PageID)}
	}
	return nil
}

func workspaceRoom(out event.Outbound) []domain.RoomID {
	switch e := out.(type) {
	case event.Presence:
		return []domain.RoomID{domain.WorkspaceRoomID(e.WorkspaceID)}
	case event.PresenceSnapshot:
		return []domain.RoomID{domain.WorkspaceRoomID(e.WorkspaceID)}
	case event.Activity:
		return []domain.RoomID{domain.WorkspaceRoomID(e.WorkspaceID)}
	}
	return nil
}

func projectAndWorkspaceRooms(out event.Outbound) []domain.RoomID {
	e, ok := out.(event.ProjectAnalytics)
	if !ok {
		return nil
	}
	rooms := []domain.RoomID{domain.ProjectRoomID(e.ProjectID)}
	if e.WorkspaceID != "" {
		rooms = append(rooms, domain.WorkspaceRoomID(e.WorkspaceID))
	}
	return rooms
}

func targetUserRoom(out event.Outbound) []domain.RoomID {
	switch e := out.(type) {
	case event.TaskAssignment:
		return []domain.RoomID{domain.UserRoomID(e.UserID)}
	case event.Mention:
		return []domain.RoomID{domain.UserRoomID(e.UserID)}
	}
	return nil
}
