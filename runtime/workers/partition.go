package workers

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/google/uuid"
)

// Delivery is one encoded event bound to one room.
type Delivery struct {
	Room  domain.RoomID
	Kind  string
	Frame []byte
	// Exclude is the origin connection when the event must not echo back.
	Exclude uuid.UUID
	// Only restricts the delivery to a single member of the room.
	Only uuid.UUID
	// Skip lists rooms already served by an earlier delivery of the same event,
	// their members are not delivered twice.
	Skip []domain.RoomID
}

// Partitions shards rooms across independent channels. A room always maps to
// the same partition, so deliveries of one room keep their submission order.
type Partitions struct {
	log      *slog.Logger
	channels []chan Delivery
}

func NewPartitions(log *slog.Logger, count, bufferSize int) *Partitions {
	if count < 1 {
		count = 1
	}
	channels := make([]chan Delivery, count)
	for i := range channels {
		channels[i] = make(chan Delivery, bufferSize)
	}
	return &Partitions{log: log, channels: channels}
}

func (p *Partitions) index(room domain.RoomID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(room.String()))
	return int(h.Sum32() % uint32(len(p.channels)))
}

// Submit never blocks. A full partition drops the delivery.
func (p *Partitions) Submit(delivery Delivery) error {
	select {
	case p.channels[p.index(delivery.Room)] <- delivery:
		return nil
	default:
		p.log.Warn("Partition full, dropping delivery", "room", delivery.Room.String(), "event", delivery.Kind)
		return errors.ErrQueueFull
	}
}

// Backlog returns the deliveries waiting across all partitions.
// Reading len of a channel never blocks, the value is a sample.
func (p *Partitions) Backlog() int {
	total := 0
	for _, ch := range p.channels {
		total += len(ch)
	}
	return total
}

// Workers returns one worker per partition.
func (p *Partitions) Workers(rooms contract.IRoomDirectory) []contract.Worker {
	res := make([]contract.Worker, 0, len(p.channels))
	for i, ch := range p.channels {
		res = append(res, NewPartitionWorker(p.log.With("partition", i), ch, rooms))
	}
	return res
}

// Ensure *PartitionWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PartitionWorker)(nil)

// PartitionWorker is the single owner of the deliveries of its rooms.
type PartitionWorker struct {
	log        *slog.Logger
	deliveries <-chan Delivery
	rooms      contract.IRoomDirectory
}

func NewPartitionWorker(log *slog.Logger, deliveries <-chan Delivery, rooms contract.IRoomDirectory) *PartitionWorker {
	return &PartitionWorker{log: log, deliveries: deliveries, rooms: rooms}
}

func (w *PartitionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case delivery, ok := <-w.deliveries:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.Deliver(delivery); err != nil {
				w.log.Error("Delivery failed", "room", delivery.Room.String(), "event", delivery.Kind, "error", err)
			}
		}
	}
}

// Deliver fans the frame out to the current members of the room.
// A panic is contained to this delivery.
func (w *PartitionWorker) Deliver(delivery Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()

	skipped := make(map[uuid.UUID]struct{})
	for _, room := range delivery.Skip {
		for _, sender := range w.rooms.Senders(room) {
			skipped[sender.ID()] = struct{}{}
		}
	}

	for _, sender := range w.rooms.Senders(delivery.Room) {
		id := sender.ID()
		if delivery.Exclude != uuid.Nil && id == delivery.Exclude {
			continue
		}
		if delivery.Only != uuid.Nil && id != delivery.Only {
			continue
		}
		if _, ok := skipped[id]; ok {
			continue
		}
		if !sender.Send(delivery.Frame) {
			w.log.Warn("Connection buffer full, frame dropped", "connID", id, "event", delivery.Kind)
		}
	}
	return nil
}
