package main

import (
	"context"
	"fmt"
	"os"
	"time"

	env "github.com/Netflix/go-env"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"relay-lab/infrastructure/web"
	"relay-lab/internal"
	"relay-lab/observability"
	"relay-lab/runtime"
	"relay-lab/runtime/workers"
	"relay-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Dispatcher terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanup always executes and the
// boot sequence stays testable.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	clock := internal.Clock(internal.SystemClock)

	// 2. Runtime: task table, processing pool, supervision
	metrics := observability.NewMetrics()
	table := runtime.NewTaskTable(logger, clock)
	processor := runtime.NewProcessor(logger, clock, config.ProcessorBase())
	jobs := make(chan workers.ProcessingJob, config.ProcessQueueSize)

	sup := workers.NewSupervisor(logger, metrics, config.RestartInterval)
	for i := 0; i < config.NumberOfWorkers; i++ {
		sup.Add(workers.NewProcessorWorker(logger, jobs, processor, table, func(failed bool) {
			if failed {
				metrics.IncrTaskFailed()
			} else {
				metrics.IncrTaskCompleted()
			}
		}))
	}
	sup.Add(workers.NewHeartbeatWorker(logger, metrics, config.MetricInterval))
	sup.Add(workers.NewChannelCapacityWorker(logger,
		[]workers.NamedChannel{{Name: "dispatch.jobs", Channel: jobs}},
		metrics, config.MetricInterval))

	go func() {
		logger.Info("Starting processing pool", "workers", config.NumberOfWorkers)
		sup.Run(context.Background())
	}()

	// 3. HTTP API
	dispatcher := services.NewDispatcher(logger, clock, table, jobs, config.SLA(), metrics)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	web.NewDispatchServer(logger, dispatcher, table, metrics).Register(app)

	address := fmt.Sprintf(":%d", config.HTTPPort)
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting dispatcher HTTP server", "address", address, "sla", config.SLA())
		if err := app.Listen(address); err != nil {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 4. Wait for a signal or a fatal server error. In-flight processing jobs
	// get the grace period before the pool is cancelled.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		config.ShutdownGrace,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				return app.ShutdownWithContext(ctx)
			},
			"processing-pool": func(ctx context.Context) error {
				waitForDrain(ctx, jobs, metrics)
				sup.Stop()
				return nil
			},
		},
	)

	select {
	case err := <-errChan:
		return exitRuntime, err
	case code := <-wait:
		logger.Info("Program stopped cleanly", "code", code)
		if code != exitOK {
			return code, fmt.Errorf("graceful shutdown incomplete")
		}
		return exitOK, nil
	}
}

// waitForDrain lets queued jobs reach a worker and in-flight jobs finish
// before supervision stops, bounded by the shutdown context.
func waitForDrain(ctx context.Context, jobs chan workers.ProcessingJob, metrics *observability.Metrics) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		stats := metrics.Snapshot()
		if len(jobs) == 0 && stats.TasksCompleted+stats.TasksFailed >= stats.TasksSubmitted {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
