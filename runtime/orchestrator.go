// Package runtime owns room membership, presence and event routing.
// It composes the partition workers, the side-effect queue and the supervisor.
package runtime

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ contract.IHub = (*Orchestrator)(nil)

// Settings sizes the runtime pipelines.
type Settings struct {
	NumberOfPartitions  int
	BufferSize          int
	NumberOfTaskWorkers int
	TaskBufferSize      int
	TaskTimeout         time.Duration
	StatsInterval       time.Duration
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	settings   Settings
	supervisor contract.ISupervisor
	registry   *Registry
	partitions *workers.Partitions
	tasks      *workers.TaskQueue
	router     *Router
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor, registry *Registry, settings Settings) *Orchestrator {
	partitions := workers.NewPartitions(log.With("component", "partitions"), settings.NumberOfPartitions, settings.BufferSize)
	tasks := workers.NewTaskQueue(log.With("component", "tasks"), settings.TaskBufferSize)
	return &Orchestrator{
		log:        log,
		settings:   settings,
		supervisor: supervisor,
		registry:   registry,
		partitions: partitions,
		tasks:      tasks,
		router:     NewRouter(log, registry, partitions, tasks),
	}
}

// Router exposes the emitter used by the notification bridge.
func (o *Orchestrator) Router() *Router {
	return o.router
}

func (o *Orchestrator) SetMentionProcessor(mentions contract.IMentionProcessor) {
	o.router.SetMentionProcessor(mentions)
}

// Start registers every worker with the supervisor and runs it until ctx is
// done or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	// 1. Preparation phase (No Lock)
	var all []contract.Worker
	all = append(all, o.partitions.Workers(o.registry)...)
	all = append(all, o.tasks.Workers(o.settings.NumberOfTaskWorkers, o.settings.TaskTimeout)...)
	if o.settings.StatsInterval > 0 {
		all = append(all, workers.NewStatsWorker(o.log.With("component", "stats"), o, o.settings.StatsInterval))
	}

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		o.log.Warn("Orchestrator already started")
		return
	}
	o.started = true
	o.supervisor.Add(all...)
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers", "partitions", o.settings.NumberOfPartitions,
		"taskWorkers", o.settings.NumberOfTaskWorkers)
	o.supervisor.Run(ctx)
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}

// Connect registers an authenticated connection and joins its private user room.
func (o *Orchestrator) Connect(sender contract.ISender, user domain.User) error {
	o.registry.Register(Member{ConnID: sender.ID(), User: user, Sender: sender})
	if err := o.router.Join(sender.ID(), domain.UserRoomID(user.ID)); err != nil {
		o.router.Disconnect(sender.ID())
		return err
	}
	o.log.Debug("Connection registered", "connID", sender.ID(), "userID", user.ID)
	return nil
}

func (o *Orchestrator) HandleMessage(ctx context.Context, connID uuid.UUID, frame []byte) {
	o.router.HandleMessage(ctx, connID, frame)
}

func (o *Orchestrator) Disconnect(connID uuid.UUID) {
	o.router.Disconnect(connID)
	o.log.Debug("Connection released", "connID", connID)
}

func (o *Orchestrator) Stats() domain.HubStats {
	stats := o.registry.Stats()
	stats.PartitionBacklog = o.partitions.Backlog()
	stats.TaskBacklog = o.tasks.Backlog()
	return stats
}
