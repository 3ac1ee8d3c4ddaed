// Package web exposes both services over their transports: the dispatcher as
// a JSON HTTP API, the chat bus as a WebSocket endpoint. Handlers translate
// between the wire and the services; they hold no business rules.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/observability"
	"relay-lab/services"
)

type DispatchServer struct {
	log        *slog.Logger
	dispatcher *services.Dispatcher
	table      contract.ITaskTable
	metrics    *observability.Metrics
}

func NewDispatchServer(log *slog.Logger, dispatcher *services.Dispatcher,
	table contract.ITaskTable, metrics *observability.Metrics) *DispatchServer {
	return &DispatchServer{
		log:        log,
		dispatcher: dispatcher,
		table:      table,
		metrics:    metrics,
	}
}

func (s *DispatchServer) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/process", s.handleProcess)
	api.Get("/task/result/:taskId", s.handleTaskResult)
	api.Get("/task/list", s.handleTaskList)
	api.Get("/tasks/:taskId", s.handleTaskResult)
	api.Get("/tasks", s.handleTaskList)
	api.Get("/health", s.handleHealth)
	api.Get("/stats", s.handleStats)
}

func (s *DispatchServer) handleProcess(c *fiber.Ctx) error {
	var req domain.DataProcessingRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn("Malformed process request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	status, rec := s.dispatcher.Submit(req)
	return c.Status(status).JSON(rec)
}

// handleTaskResult serves the polling endpoint. A COMPLETED record is removed
// from the table in the same lookup, so the first successful retrieval is the
// only one; PROCESSING and FAILED records keep answering.
func (s *DispatchServer) handleTaskResult(c *fiber.Ctx) error {
	taskID := c.Params("taskId")
	rec, ok := s.table.GetAndMaybeRemove(taskID)
	if !ok {
		s.log.Warn("No result found for task", "task_id", taskID)
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(rec)
}

func (s *DispatchServer) handleTaskList(c *fiber.Ctx) error {
	ids := s.table.ListIDs()
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(ids)
}

func (s *DispatchServer) handleHealth(c *fiber.Ctx) error {
	return c.SendString("UP")
}

func (s *DispatchServer) handleStats(c *fiber.Ctx) error {
	return c.JSON(s.metrics.Snapshot())
}
