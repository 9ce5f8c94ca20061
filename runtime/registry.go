package runtime

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Member is a connection as seen by the rooms it joined.
type Member struct {
	ConnID uuid.UUID
	User   domain.User
	Sender contract.ISender
}

type connection struct {
	member Member
	rooms  map[domain.RoomID]struct{}
}

// JoinResult describes the membership delta produced by Join.
type JoinResult struct {
	Member Member
	Room   domain.RoomID
	// Joined is false when the connection was already a member.
	Joined bool
	// FirstConnection is true when this join brought the user online in the workspace.
	FirstConnection bool
	// Snapshot lists the workspace users online before the join, never the joining user.
	Snapshot []string
}

// LeaveResult describes the membership delta produced by Leave or Disconnect.
type LeaveResult struct {
	Member Member
	Room   domain.RoomID
	// Left is false when the connection was not a member.
	Left bool
	// LastConnection is true when this leave took the user offline in the workspace.
	LastConnection bool
}

// Registry owns the room membership tables and the presence counts derived
// from workspace membership. Every operation is atomic under one lock, so a
// presence snapshot can never observe a connection the transport has already
// reported as closed.
type Registry struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*connection
	rooms       map[domain.RoomID]map[uuid.UUID]struct{}
	presence    *presence
	maxSnapshot int
}

// NewRegistry caps current-users snapshots at maxSnapshot users, 0 disables the cap.
func NewRegistry(maxSnapshot int) *Registry {
	return &Registry{
		connections: make(map[uuid.UUID]*connection),
		rooms:       make(map[domain.RoomID]map[uuid.UUID]struct{}),
		presence:    newPresence(),
		maxSnapshot: maxSnapshot,
	}
}

// Register makes an authenticated connection known. It joins no room.
func (r *Registry) Register(member Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections[member.ConnID]; ok {
		return
	}
	r.connections[member.ConnID] = &connection{
		member: member,
		rooms:  make(map[domain.RoomID]struct{}),
	}
}

// Join adds the connection to the room. Rooms are virtual: any key is accepted.
func (r *Registry) Join(connID uuid.UUID, room domain.RoomID) (JoinResult, error) {
	if room.IsZero() {
		return JoinResult{}, errors.ErrEmptyRoomKey
	}
	if !room.Kind.Valid() {
		return JoinResult{}, errors.ErrUnknownRoomKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[connID]
	if !ok {
		return JoinResult{}, errors.ErrUnknownConnection
	}
	result := JoinResult{Member: conn.member, Room: room}
	if _, already := conn.rooms[room]; already {
		return result, nil
	}

	if room.Kind == domain.WorkspaceRoom {
		userID := conn.member.User.ID
		result.Snapshot = r.snapshotWithout(room.Key, userID)
		result.FirstConnection = r.presence.increment(room.Key, userID) == 1
	}

	conn.rooms[room] = struct{}{}
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[uuid.UUID]struct{})
		r.rooms[room] = members
	}
	members[connID] = struct{}{}
	result.Joined = true
	return result, nil
}

// Leave removes the connection from the room.
func (r *Registry) Leave(connID uuid.UUID, room domain.RoomID) (LeaveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[connID]
	if !ok {
		return LeaveResult{}, errors.ErrUnknownConnection
	}
	return r.leave(conn, room), nil
}

// Disconnect removes the connection from every room it joined and forgets it.
// Workspace presence is decremented exactly once per joined workspace. A second
// call for the same connection returns nil.
func (r *Registry) Disconnect(connID uuid.UUID) []LeaveResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[connID]
	if !ok {
		return nil
	}
	rooms := lo.Keys(conn.rooms)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].String() < rooms[j].String() })

	results := make([]LeaveResult, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, r.leave(conn, room))
	}
	delete(r.connections, connID)
	return results
}

func (r *Registry) leave(conn *connection, room domain.RoomID) LeaveResult {
	result := LeaveResult{Member: conn.member, Room: room}
	if _, ok := conn.rooms[room]; !ok {
		return result
	}
	delete(conn.rooms, room)

	connID := conn.member.ConnID
	if members, ok := r.rooms[room]; ok {
		delete(members, connID)
		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
	if room.Kind == domain.WorkspaceRoom {
		result.LastConnection = r.presence.decrement(room.Key, conn.member.User.ID) == 0
	}
	result.Left = true
	return result
}

// Members returns the current members of a room, nil when the room is empty.
func (r *Registry) Members(room domain.RoomID) []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.rooms[room]
	if !ok {
		return nil
	}
	members := make([]Member, 0, len(ids))
	for connID := range ids {
		if conn, exists := r.connections[connID]; exists {
			members = append(members, conn.member)
		}
	}
	return members
}

// Senders implements contract.IRoomDirectory for the partition workers.
func (r *Registry) Senders(room domain.RoomID) []contract.ISender {
	return lo.Map(r.Members(room), func(member Member, _ int) contract.ISender {
		return member.Sender
	})
}

// Member returns the registered connection.
func (r *Registry) Member(connID uuid.UUID) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connections[connID]
	if !ok {
		return Member{}, false
	}
	return conn.member, true
}

// RoomsOf lists the rooms a connection belongs to.
func (r *Registry) RoomsOf(connID uuid.UUID) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connections[connID]
	if !ok {
		return nil
	}
	return lo.Keys(conn.rooms)
}

// Presence returns the sorted users online in a workspace.
func (r *Registry) Presence(workspaceID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presence.snapshot(workspaceID)
}

// PresenceCount returns how many connections the user holds in the workspace.
func (r *Registry) PresenceCount(workspaceID, userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presence.count(workspaceID, userID)
}

func (r *Registry) Stats() domain.HubStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.HubStats{
		Connections: len(r.connections),
		Rooms:       len(r.rooms),
		Workspaces:  len(r.presence.workspaces),
		OnlineUsers: r.presence.onlineUsers(),
	}
}

func (r *Registry) snapshotWithout(workspaceID, userID string) []string {
	users := lo.Without(r.presence.snapshot(workspaceID), userID)
	if r.maxSnapshot > 0 && len(users) > r.maxSnapshot {
		users = users[:r.maxSnapshot]
	}
	return users
}
