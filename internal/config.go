package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries the knobs of both services. Every field has a default so the
// binaries start with no environment at all; overrides follow the env names.
type Config struct {
	HTTPPort          int           `env:"HTTP_PORT,default=8081" validate:"gt=0,lte=65535"`
	ChatPort          int           `env:"CHAT_PORT,default=8082" validate:"gt=0,lte=65535"`
	DispatcherSLAMs   int           `env:"DISPATCHER_SLA_MS,default=30000" validate:"gt=0"`
	RoomBufferSize    int           `env:"ROOM_BUFFER_SIZE,default=256" validate:"gt=0"`
	SessionBufferSize int           `env:"SESSION_BUFFER_SIZE,default=64" validate:"gt=0"`
	ProcessorBaseMs   int           `env:"PROCESSOR_BASE_MS,default=60000" validate:"gt=0"`
	NumberOfWorkers   int           `env:"NUMBER_OF_WORKERS,default=8" validate:"gt=0"`
	ProcessQueueSize  int           `env:"PROCESS_QUEUE_SIZE,default=128" validate:"gt=0"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ShutdownGrace     time.Duration `env:"SHUTDOWN_GRACE,default=30s"`
}

// Validate applies the per-field rules above. Called once at boot; a failure
// is a config error, not a runtime one.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// SLA is the synchronous deadline of the dispatcher.
func (c Config) SLA() time.Duration {
	return time.Duration(c.DispatcherSLAMs) * time.Millisecond
}

// ProcessorBase is the duration of a complexity-10 unit of work.
func (c Config) ProcessorBase() time.Duration {
	return time.Duration(c.ProcessorBaseMs) * time.Millisecond
}
