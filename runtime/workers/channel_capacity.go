package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/samber/lo"

	"relay-lab/contract"
	"relay-lab/observability"
)

var _ contract.Worker = (*ChannelCapacityWorker)(nil)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically reports the current channel capacity and
// length of the bounded buffers it watches. Reading len and cap is
// non-blocking, so this never interferes with the producers or consumers.
type ChannelCapacityWorker struct {
	log      *slog.Logger
	channels []NamedChannel
	metrics  *observability.Metrics
	interval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	metrics *observability.Metrics, interval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{log: log, channels: channels, metrics: metrics, interval: interval}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping capacity sampling")
			return nil
		case <-ticker.C:
			depths := lo.FilterMap(w.channels, func(nc NamedChannel, _ int) (observability.QueueDepth, bool) {
				v := reflect.ValueOf(nc.Channel)
				if v.Kind() != reflect.Chan {
					w.log.Error("Provided object is not a channel", "name", nc.Name)
					return observability.QueueDepth{}, false
				}
				return observability.QueueDepth{Name: nc.Name, Length: v.Len(), Capacity: v.Cap()}, true
			})
			w.metrics.ReportQueues(depths)
		}
	}
}
