package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"relay-lab/domain"
	"relay-lab/internal"
)

func TestProcessor_Run_ProducesResult(t *testing.T) {
	req := require.New(t)
	processor := NewProcessor(slog.Default(), internal.SystemClock, 100*time.Millisecond)

	start := time.Now()
	result, err := processor.Run(context.Background(),
		domain.DataProcessingRequest{Data: "x", Complexity: 1})

	// Complexity 1 works a tenth of the base
	req.NoError(err)
	req.GreaterOrEqual(time.Since(start), 10*time.Millisecond)
	req.Equal("x - processed", result.ProcessedData)
	req.Equal(domain.ResultMessage, result.Message)
	req.Equal(1, result.Complexity)
	req.NotZero(result.Timestamp)
}

func TestProcessor_Run_DeterministicDerivation(t *testing.T) {
	req := require.New(t)
	processor := NewProcessor(slog.Default(), internal.SystemClock, 10*time.Millisecond)

	first, err := processor.Run(context.Background(),
		domain.DataProcessingRequest{Data: "payload", Complexity: 1})
	req.NoError(err)
	second, err := processor.Run(context.Background(),
		domain.DataProcessingRequest{Data: "payload", Complexity: 1})
	req.NoError(err)

	req.Equal(first.ProcessedData, second.ProcessedData)
}

func TestProcessor_Run_Cancelled(t *testing.T) {
	req := require.New(t)
	processor := NewProcessor(slog.Default(), internal.SystemClock, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processor.Run(ctx, domain.DataProcessingRequest{Data: "x", Complexity: 10})

	req.Error(err)
	req.ErrorIs(err, context.Canceled)
}
