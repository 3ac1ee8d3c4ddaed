package main

import (
	"context"
	"fmt"
	"os"

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

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

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

	// 2. Runtime: sessions, rooms, supervision
	metrics := observability.NewMetrics()
	seq := &internal.Sequence{}
	sessions := runtime.NewSessionTable(logger, clock, seq, metrics, config.SessionBufferSize)

	sup := workers.NewSupervisor(logger, metrics, config.RestartInterval)
	registry := runtime.NewRoomRegistry(logger, clock, seq, metrics, sessions, sup, config.RoomBufferSize)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	registry.Bind(runCtx)

	sup.Add(workers.NewHeartbeatWorker(logger, metrics, config.MetricInterval))
	go func() {
		logger.Info("Starting chat runtime")
		sup.Run(runCtx)
	}()

	// 3. WebSocket endpoint
	router := services.NewMessageRouter(logger, clock, seq, metrics, sessions, registry)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	web.NewChatServer(logger, clock, router, sessions, registry).Register(app)

	address := fmt.Sprintf(":%d", config.ChatPort)
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting chat WebSocket server", "address", address)
		if err := app.Listen(address); err != nil {
			errChan <- fmt.Errorf("chat server error: %w", err)
		}
	}()

	// 4. Wait for a signal or a fatal server error. Sessions get one last
	// system notice before their queues close.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		config.ShutdownGrace,
		map[string]gfshutdown.Operation{
			"sessions": func(ctx context.Context) error {
				sessions.Shutdown("server shutting down")
				return nil
			},
			"ws": func(ctx context.Context) error {
				return app.ShutdownWithContext(ctx)
			},
			"rooms": func(ctx context.Context) error {
				cancel()
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
