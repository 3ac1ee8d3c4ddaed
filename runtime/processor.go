package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/internal"
)

var _ contract.IProcessor = (*Processor)(nil)

// Processor executes the synthetic workload. It always runs on a processing
// worker goroutine, never on a transport one, and observes only the worker
// pool's context. A client giving up on its request does not reach this ctx.
type Processor struct {
	log   *slog.Logger
	clock internal.Clock
	base  time.Duration
}

// NewProcessor builds a processor whose complexity-10 work lasts base.
func NewProcessor(log *slog.Logger, clock internal.Clock, base time.Duration) *Processor {
	return &Processor{log: log, clock: clock, base: base}
}

func (p *Processor) Run(ctx context.Context, req domain.DataProcessingRequest) (domain.DataProcessingResult, error) {
	duration := domain.ProcessingDuration(req.Complexity, p.base)
	p.log.Debug("Starting synthetic work", "duration", duration, "complexity", req.Complexity)

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.DataProcessingResult{}, fmt.Errorf("processing cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	return domain.DataProcessingResult{
		ProcessedData: domain.DeriveProcessedData(req.Data),
		Message:       domain.ResultMessage,
		Timestamp:     internal.EpochMillis(p.clock()),
		Complexity:    req.Complexity,
	}, nil
}
