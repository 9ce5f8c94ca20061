package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomID(t *testing.T) {
	tests := []struct {
		name     string
		room     RoomID
		expected string
		zero     bool
	}{
		{name: "user room", room: UserRoomID("alice"), expected: "user:alice"},
		{name: "workspace key is trimmed", room: WorkspaceRoomID("  w1 "), expected: "workspace:w1"},
		{name: "page room", room: PageRoomID("p1"), expected: "page:p1"},
		{name: "project room", room: ProjectRoomID("pr1"), expected: "project:pr1"},
		{name: "blank key", room: PageRoomID("   "), expected: "page:", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, tt.room.String())
			req.Equal(tt.zero, tt.room.IsZero())
		})
	}
}

func TestRoomID_Same_Key_Different_Kinds(t *testing.T) {
	req := require.New(t)

	req.NotEqual(PageRoomID("x"), ProjectRoomID("x"))
	req.Equal(PageRoomID("x"), NewRoomID(PageRoom, " x"))
}

func TestRoomKind_Valid(t *testing.T) {
	req := require.New(t)

	for _, kind := range []RoomKind{UserRoom, WorkspaceRoom, PageRoom, ProjectRoom} {
		req.True(kind.Valid())
	}
	req.False(RoomKind("channel").Valid())
}

func TestSuppressionKey_String(t *testing.T) {
	key := SuppressionKey{TargetUserID: "bob", PageID: "p1", AuthorID: "alice"}
	require.Equal(t, "bob:p1:alice", key.String())
}
