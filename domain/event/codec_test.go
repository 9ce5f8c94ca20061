package event

import (
	"collab-hub/domain"
	"collab-hub/errors"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_RoomChanges(t *testing.T) {
	tests := []struct {
		name     string
		frame    string
		expected RoomChange
	}{
		{
			name:     "Join workspace with a bare id",
			frame:    `{"event":"join-workspace","payload":"w1"}`,
			expected: RoomChange{Event: JoinWorkspace, Room: domain.WorkspaceRoomID("w1"), Join: true},
		},
		{
			name:     "Join page with an object payload",
			frame:    `{"event":"join-page","payload":{"pageId":"p1"}}`,
			expected: RoomChange{Event: JoinPage, Room: domain.PageRoomID("p1"), Join: true},
		},
		{
			name:     "Leave project trims the key",
			frame:    `{"event":"leave-project","payload":" pr1 "}`,
			expected: RoomChange{Event: LeaveProject, Room: domain.ProjectRoomID("pr1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			in, err := Decode([]byte(tt.frame))
			req.NoError(err)
			req.Equal(tt.expected, in)
		})
	}
}

func TestDecode_Rejects_Malformed_Frames(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"Not JSON", `not json`},
		{"Unknown event", `{"event":"drop-table","payload":{}}`},
		{"Empty room key", `{"event":"join-workspace","payload":"  "}`},
		{"Room key of the wrong type", `{"event":"join-page","payload":{"pageId":12}}`},
		{"Document update without page", `{"event":"document-update","payload":{"update":{"ops":[]}}}`},
		{"Document update without update", `{"event":"document-update","payload":{"pageId":"p1"}}`},
		{"Cursor update without payload", `{"event":"cursor-update"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			in, err := Decode([]byte(tt.frame))
			req.Nil(in)
			req.True(errors.IsValidation(err))
		})
	}
}

func TestDecode_DocumentUpdate_Keeps_Opaque_Update(t *testing.T) {
	req := require.New(t)
	in, err := Decode([]byte(`{"event":"document-update","payload":{"pageId":"p1","update":{"ops":[{"insert":"hi"}]}}}`))
	req.NoError(err)

	doc, ok := in.(DocumentUpdated)
	req.True(ok)
	req.Equal("p1", doc.PageID)
	req.JSONEq(`{"ops":[{"insert":"hi"}]}`, string(doc.Update))
}

func TestEncode_Hides_Routing_Fields(t *testing.T) {
	req := require.New(t)

	raw, err := Encode(Presence{
		User:        domain.User{ID: "u1", Name: "Ada", Avatar: "a.png"},
		WorkspaceID: "w1",
		Joined:      true,
	})
	req.NoError(err)
	req.JSONEq(`{"event":"user-joined","payload":{"userId":"u1","name":"Ada","avatar":"a.png"}}`, string(raw))

	raw, err = Encode(PresenceSnapshot{WorkspaceID: "w1"})
	req.NoError(err)
	req.JSONEq(`{"event":"current-users","payload":[]}`, string(raw))

	raw, err = Encode(TaskAssignment{UserID: "u2", Payload: json.RawMessage(`{"taskId":"t1"}`)})
	req.NoError(err)
	req.JSONEq(`{"event":"task-assigned-notification","payload":{"taskId":"t1"}}`, string(raw))
}
