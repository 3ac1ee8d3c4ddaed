package workers

import (
	"context"
	"log/slog"

	"relay-lab/contract"
	"relay-lab/domain"
)

var _ contract.Worker = (*ProcessorWorker)(nil)

// ProcessingJob is one accepted request travelling from the dispatcher to the
// processing pool. Done carries the final record back to a waiter that may
// already be gone; it is buffered so the worker never blocks on it.
type ProcessingJob struct {
	TaskID  string
	Request domain.DataProcessingRequest
	Done    chan domain.TaskRecord
}

func NewProcessingJob(taskID string, req domain.DataProcessingRequest) ProcessingJob {
	return ProcessingJob{TaskID: taskID, Request: req, Done: make(chan domain.TaskRecord, 1)}
}

// ProcessorWorker is one unit of the blocking-work pool. It consumes jobs,
// runs the processor, and writes the terminal status through the task table.
// Its context is the supervisor's: a client abandoning its request never
// reaches a job in flight.
type ProcessorWorker struct {
	log       *slog.Logger
	jobs      <-chan ProcessingJob
	processor contract.IProcessor
	table     contract.ITaskTable
	onDone    func(failed bool)
}

func NewProcessorWorker(log *slog.Logger, jobs <-chan ProcessingJob,
	processor contract.IProcessor, table contract.ITaskTable, onDone func(failed bool)) *ProcessorWorker {
	return &ProcessorWorker{log: log, jobs: jobs, processor: processor, table: table, onDone: onDone}
}

func (w *ProcessorWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping processor worker")
			return nil
		case job, ok := <-w.jobs:
			if !ok {
				return nil
			}
			w.process(ctx, job)
		}
	}
}

func (w *ProcessorWorker) process(ctx context.Context, job ProcessingJob) {
	result, err := w.processor.Run(ctx, job.Request)
	failed := err != nil
	if failed {
		w.log.Error("Processing failed", "task_id", job.TaskID, "error", err)
		if err := w.table.MarkFailed(job.TaskID, err.Error()); err != nil {
			w.log.Warn("Could not mark task failed", "task_id", job.TaskID, "error", err)
		}
	} else {
		if err := w.table.MarkCompleted(job.TaskID, result); err != nil {
			w.log.Warn("Could not mark task completed", "task_id", job.TaskID, "error", err)
		}
	}

	if w.onDone != nil {
		w.onDone(failed)
	}

	if rec, ok := w.table.Get(job.TaskID); ok {
		select {
		case job.Done <- rec:
		default:
		}
	}
}
