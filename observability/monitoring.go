// Package observability aggregates in-process counters for both services.
// Counters are updated lock-free on the hot paths and snapshotted by the
// heartbeat worker and the stats endpoint.
package observability

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Stats is one consistent-enough snapshot of the live counters.
type Stats struct {
	TasksSubmitted   uint64 `json:"tasks_submitted"`
	TasksCompleted   uint64 `json:"tasks_completed"`
	TasksFailed      uint64 `json:"tasks_failed"`
	TasksDeferred    uint64 `json:"tasks_deferred"`
	MessagesRouted   uint64 `json:"messages_routed"`
	RoomDropCount    uint64 `json:"room.drop_count"`
	SessionDropCount uint64 `json:"session.drop_count"`
	RouterRejected   uint64 `json:"router.rejected"`
	WorkerRestarts   uint64 `json:"worker.restarts"`
	AllocMemMb       uint64 `json:"alloc_mem_mb"`
	NumGC            uint32 `json:"num_gc"`

	Queues []QueueDepth `json:"queues,omitempty"`
}

// QueueDepth is a sampled length/capacity pair for one named bounded buffer.
type QueueDepth struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
}

type Metrics struct {
	tasksSubmitted   atomic.Uint64
	tasksCompleted   atomic.Uint64
	tasksFailed      atomic.Uint64
	tasksDeferred    atomic.Uint64
	messagesRouted   atomic.Uint64
	roomDropCount    atomic.Uint64
	sessionDropCount atomic.Uint64
	routerRejected   atomic.Uint64
	workerRestarts   atomic.Uint64

	mu     sync.RWMutex
	queues []QueueDepth
}

func NewMetrics() *Metrics { return &Metrics{} }

func (m *Metrics) IncrTaskSubmitted()   { m.tasksSubmitted.Add(1) }
func (m *Metrics) IncrTaskCompleted()   { m.tasksCompleted.Add(1) }
func (m *Metrics) IncrTaskFailed()      { m.tasksFailed.Add(1) }
func (m *Metrics) IncrTaskDeferred()    { m.tasksDeferred.Add(1) }
func (m *Metrics) IncrMessagesRouted()  { m.messagesRouted.Add(1) }
func (m *Metrics) IncrRoomDrop()        { m.roomDropCount.Add(1) }
func (m *Metrics) IncrSessionDrop()     { m.sessionDropCount.Add(1) }
func (m *Metrics) IncrRouterRejected()  { m.routerRejected.Add(1) }
func (m *Metrics) IncrWorkerRestart()   { m.workerRestarts.Add(1) }

func (m *Metrics) RoomDrops() uint64      { return m.roomDropCount.Load() }
func (m *Metrics) SessionDrops() uint64   { return m.sessionDropCount.Load() }
func (m *Metrics) WorkerRestarts() uint64 { return m.workerRestarts.Load() }

// ReportQueues replaces the sampled queue depths. Called by the capacity worker.
func (m *Metrics) ReportQueues(queues []QueueDepth) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues = queues
}

// Snapshot folds the counters and the Go allocator stats into one Stats value.
func (m *Metrics) Snapshot() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.mu.RLock()
	queues := make([]QueueDepth, len(m.queues))
	copy(queues, m.queues)
	m.mu.RUnlock()

	return Stats{
		TasksSubmitted:   m.tasksSubmitted.Load(),
		TasksCompleted:   m.tasksCompleted.Load(),
		TasksFailed:      m.tasksFailed.Load(),
		TasksDeferred:    m.tasksDeferred.Load(),
		MessagesRouted:   m.messagesRouted.Load(),
		RoomDropCount:    m.roomDropCount.Load(),
		SessionDropCount: m.sessionDropCount.Load(),
		RouterRejected:   m.routerRejected.Load(),
		WorkerRestarts:   m.workerRestarts.Load(),
		AllocMemMb:       mem.Alloc / 1024 / 1024,
		NumGC:            mem.NumGC,
		Queues:           queues,
	}
}
