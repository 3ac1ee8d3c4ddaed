// Package runtime hosts the shared mutable state of both services and the
// pieces that coordinate it. Business rules stay in domain; transports stay
// in infrastructure.
package runtime

import (
	"log/slog"
	"sync"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/errors"
	"relay-lab/internal"
)

var _ contract.ITaskTable = (*TaskTable)(nil)

// TaskTable is the in-process registry of task records. Entries are guarded
// individually so status transitions never serialize across tasks.
type TaskTable struct {
	log     *slog.Logger
	clock   internal.Clock
	entries sync.Map // taskID -> *taskEntry
}

type taskEntry struct {
	mu  sync.Mutex
	rec domain.TaskRecord
}

func NewTaskTable(log *slog.Logger, clock internal.Clock) *TaskTable {
	return &TaskTable{log: log, clock: clock}
}

// InsertInitial registers a freshly accepted record. The task id must be new.
func (t *TaskTable) InsertInitial(record domain.TaskRecord) error {
	if _, loaded := t.entries.LoadOrStore(record.TaskID, &taskEntry{rec: record}); loaded {
		return errors.ErrTaskExists
	}
	return nil
}

// MarkCompleted transitions PROCESSING -> COMPLETED. Any other current status
// leaves the record untouched.
func (t *TaskTable) MarkCompleted(taskID string, result domain.DataProcessingResult) error {
	return t.transition(taskID, func(rec *domain.TaskRecord) {
		rec.Status = domain.StatusCompleted
		rec.Result = &result
		rec.ErrorMessage = ""
	})
}

// MarkFailed transitions PROCESSING -> FAILED.
func (t *TaskTable) MarkFailed(taskID string, errorMessage string) error {
	return t.transition(taskID, func(rec *domain.TaskRecord) {
		rec.Status = domain.StatusFailed
		rec.ErrorMessage = errorMessage
		rec.Result = nil
	})
}

func (t *TaskTable) transition(taskID string, mutate func(*domain.TaskRecord)) error {
	v, ok := t.entries.Load(taskID)
	if !ok {
		return errors.ErrTaskNotFound
	}
	entry := v.(*taskEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.rec.Status.Terminal() {
		return errors.ErrTaskTerminal
	}
	mutate(&entry.rec)
	now := t.clock()
	entry.rec.CompletedAt = &now
	return nil
}

func (t *TaskTable) Get(taskID string) (domain.TaskRecord, bool) {
	v, ok := t.entries.Load(taskID)
	if !ok {
		return domain.TaskRecord{}, false
	}
	entry := v.(*taskEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.rec, true
}

// GetAndMaybeRemove returns the record and removes it iff it is COMPLETED,
// within the same critical section. A client therefore never observes a
// COMPLETED task twice, while PROCESSING and FAILED records stay pollable.
func (t *TaskTable) GetAndMaybeRemove(taskID string) (domain.TaskRecord, bool) {
	v, ok := t.entries.Load(taskID)
	if !ok {
		return domain.TaskRecord{}, false
	}
	entry := v.(*taskEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	rec := entry.rec
	if rec.Status == domain.StatusCompleted {
		t.entries.Delete(taskID)
		t.log.Debug("Removed completed task after retrieval", "task_id", taskID)
	}
	return rec, true
}

// ListIDs returns a weakly consistent snapshot of the registered task ids.
func (t *TaskTable) ListIDs() []string {
	var ids []string
	t.entries.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	return ids
}
