package internal

import (
	"sync/atomic"
	"time"
)

// Clock abstracts the time source so tests can pin it.
type Clock func() time.Time

// SystemClock is the production time source.
func SystemClock() time.Time { return time.Now().UTC() }

// EpochMillis converts a time to epoch milliseconds, the wire format of
// result timestamps.
func EpochMillis(t time.Time) int64 { return t.UnixMilli() }

// Sequence is a process-local monotonic counter. The zero value is ready to
// use; Next never returns the same value twice within a process lifetime.
type Sequence struct {
	n atomic.Int64
}

func (s *Sequence) Next() int64 { return s.n.Add(1) }
