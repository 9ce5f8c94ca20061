package runtime

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/runtime/workers"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IEmitter = (*Router)(nil)

// Router maps inbound and internal events to room deliveries following the
// catalog, and drives membership changes through the registry.
type Router struct {
	// membership serializes each registry change with the submission of the
	// presence events it produces, so partitions receive them in registry order.
	membership sync.Mutex
	log        *slog.Logger
	registry   *Registry
	partitions *workers.Partitions
	tasks      *workers.TaskQueue
	mentions   contract.IMentionProcessor
	now        func() time.Time
}

func NewRouter(log *slog.Logger, registry *Registry, partitions *workers.Partitions, tasks *workers.TaskQueue) *Router {
	return &Router{
		log:        log.With("component", "event_router"),
		registry:   registry,
		partitions: partitions,
		tasks:      tasks,
		now:        time.Now,
	}
}

func (r *Router) SetMentionProcessor(mentions contract.IMentionProcessor) {
	r.mentions = mentions
}

// Emit routes an outbound event to its destination rooms. origin is the
// connection that caused it, uuid.Nil for internal events.
func (r *Router) Emit(origin uuid.UUID, out event.Outbound) error {
	rule, ok := catalog[out.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownEvent, out.Kind())
	}
	rooms := lo.Filter(rule.rooms(out), func(room domain.RoomID, _ int) bool { return !room.IsZero() })
	if len(rooms) == 0 {
		return errors.NewValidationError(string(out.Kind()), errors.ErrUnroutableEvent)
	}
	if rule.direct && origin == uuid.Nil {
		return errors.NewValidationError(string(out.Kind()), errors.ErrUnknownConnection)
	}

	frame, err := event.Encode(out)
	if err != nil {
		return errors.NewValidationError(string(out.Kind()), err)
	}

	var errs []error
	for i, room := range rooms {
		delivery := workers.Delivery{
			Room:  room,
			Kind:  string(out.Kind()),
			Frame: frame,
			Skip:  rooms[:i],
		}
		if rule.excludeOrigin {
			delivery.Exclude = origin
		}
		if rule.direct {
			delivery.Only = origin
		}
		if err := r.partitions.Submit(delivery); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", room, err))
		}
	}
	return stderrors.Join(errs...)
}

// HandleMessage is the boundary for client frames: nothing that goes wrong
// here reaches another connection.
func (r *Router) HandleMessage(ctx context.Context, connID uuid.UUID, frame []byte) {
	member, ok := r.registry.Member(connID)
	if !ok {
		r.log.Warn("Frame from an unregistered connection", "connID", connID)
		return
	}

	in, err := event.Decode(frame)
	if err != nil {
		r.log.Debug("Dropping malformed frame", "connID", connID, "error", err)
		r.reject(member, err)
		return
	}

	if err := r.Handle(ctx, member, in); err != nil {
		r.log.Warn("Event handling failed", "connID", connID, "event", in.Kind(), "error", err)
		if errors.IsValidation(err) {
			r.reject(member, err)
		}
	}
}

// Handle processes one decoded inbound event on behalf of a member.
func (r *Router) Handle(ctx context.Context, member Member, in event.Inbound) error {
	connID := member.ConnID
	switch e := in.(type) {
	case event.RoomChange:
		if e.Join {
			return r.Join(connID, e.Room)
		}
		return r.Leave(connID, e.Room)

	case event.DocumentUpdated:
		at := r.now()
		err := r.Emit(connID, event.DocumentBroadcasted{
			PageID:             e.PageID,
			Update:             e.Update,
			UserID:             member.User.ID,
			Timestamp:          at.UnixMilli(),
			OriginConnectionID: connID.String(),
		})
		r.scheduleMentions(domain.MentionRequest{
			PageID:   e.PageID,
			AuthorID: member.User.ID,
			Update:   e.Update,
			At:       at,
		})
		return err

	case event.CursorMoved:
		return r.Emit(connID, event.CursorBroadcasted{
			PageID: e.PageID,
			UserID: member.User.ID,
			Name:   member.User.Name,
			Cursor: e.Cursor,
		})

	case event.SelectionChanged:
		return r.Emit(connID, event.SelectionBroadcasted{
			PageID:    e.PageID,
			UserID:    member.User.ID,
			Name:      member.User.Name,
			Selection: e.Selection,
		})

	case event.WhiteboardChanged:
		return r.Emit(connID, event.WhiteboardBroadcasted{
			PageID:    e.PageID,
			UserID:    member.User.ID,
			Stroke:    e.Stroke,
			Action:    e.Action,
			Timestamp: r.now().UnixMilli(),
		})
	}
	return errors.NewValidationError(string(in.Kind()), errors.ErrUnknownEvent)
}

// Join adds the connection to a room. Joining a workspace announces the user
// to the other members when it is the user's first connection there, and
// sends the joining connection the users that were online before it.
func (r *Router) Join(connID uuid.UUID, room domain.RoomID) error {
	r.membership.Lock()
	defer r.membership.Unlock()

	res, err := r.registry.Join(connID, room)
	if err != nil {
		return err
	}
	if !res.Joined || room.Kind != domain.WorkspaceRoom {
		return nil
	}

	var errs []error
	if res.FirstConnection {
		errs = append(errs, r.Emit(connID, event.Presence{
			User:        res.Member.User,
			WorkspaceID: room.Key,
			Joined:      true,
		}))
	}
	errs = append(errs, r.Emit(connID, event.PresenceSnapshot{
		WorkspaceID: room.Key,
		UserIDs:     res.Snapshot,
	}))
	return stderrors.Join(errs...)
}

func (r *Router) Leave(connID uuid.UUID, room domain.RoomID) error {
	r.membership.Lock()
	defer r.membership.Unlock()

	res, err := r.registry.Leave(connID, room)
	if err != nil {
		return err
	}
	return r.announceLeave(connID, res)
}

// Disconnect runs the leave cleanup for every room of the connection.
// Calling it again for the same connection is a no-op.
func (r *Router) Disconnect(connID uuid.UUID) {
	r.membership.Lock()
	defer r.membership.Unlock()

	for _, res := range r.registry.Disconnect(connID) {
		if err := r.announceLeave(uuid.Nil, res); err != nil {
			r.log.Warn("Failed to announce departure", "connID", connID, "room", res.Room.String(), "error", err)
		}
	}
}

func (r *Router) announceLeave(origin uuid.UUID, res LeaveResult) error {
	if !res.Left || res.Room.Kind != domain.WorkspaceRoom || !res.LastConnection {
		return nil
	}
	return r.Emit(origin, event.Presence{
		User:        res.Member.User,
		WorkspaceID: res.Room.Key,
	})
}

// scheduleMentions hands the update to the mention extractor without waiting.
func (r *Router) scheduleMentions(request domain.MentionRequest) {
	if r.mentions == nil || r.tasks == nil {
		return
	}
	mentions := r.mentions
	r.tasks.Submit(workers.Task{
		Name: "mentions",
		Run: func(ctx context.Context) error {
			return mentions.Process(ctx, request)
		},
	})
}

func (r *Router) reject(member Member, cause error) {
	frame, err := event.Encode(event.Problem{Code: "validation_error", Message: cause.Error()})
	if err != nil {
		r.log.Error("Failed to encode error event", "error", err)
		return
	}
	if !member.Sender.Send(frame) {
		r.log.Debug("Could not acknowledge malformed frame", "connID", member.ConnID)
	}
}
