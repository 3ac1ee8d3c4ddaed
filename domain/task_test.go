package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClampComplexity(t *testing.T) {
	req := require.New(t)

	// Boundary values on ingress
	req.Equal(1, ClampComplexity(0))
	req.Equal(1, ClampComplexity(-3))
	req.Equal(10, ClampComplexity(11))
	req.Equal(10, ClampComplexity(15))

	// In-range values pass through
	req.Equal(1, ClampComplexity(1))
	req.Equal(5, ClampComplexity(5))
	req.Equal(10, ClampComplexity(10))
}

func TestProcessingDuration(t *testing.T) {
	req := require.New(t)
	base := 60 * time.Second

	// Complexity 1 works a tenth of the base, complexity 10 the whole of it
	req.Equal(6000*time.Millisecond, ProcessingDuration(1, base))
	req.Equal(30000*time.Millisecond, ProcessingDuration(5, base))
	req.Equal(60000*time.Millisecond, ProcessingDuration(10, base))
}

func TestDeriveProcessedData_Deterministic(t *testing.T) {
	req := require.New(t)

	// Given the same payload
	// When derived twice
	// Then the outputs are identical
	req.Equal("x - processed", DeriveProcessedData("x"))
	req.Equal(DeriveProcessedData("payload"), DeriveProcessedData("payload"))
}

func TestTaskStatus_Terminal(t *testing.T) {
	req := require.New(t)

	req.False(StatusProcessing.Terminal())
	req.True(StatusCompleted.Terminal())
	req.True(StatusFailed.Terminal())
}

func TestNewTaskRecord(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	request := DataProcessingRequest{Data: "x", Complexity: 3}

	rec := NewTaskRecord("task-1", request, now)

	req.Equal("task-1", rec.TaskID)
	req.Equal(StatusProcessing, rec.Status)
	req.Equal(now, rec.CreatedAt)
	req.Nil(rec.CompletedAt)
	req.Nil(rec.Result)
	req.Empty(rec.ErrorMessage)
	req.Equal(request, rec.OriginalRequest)
}
