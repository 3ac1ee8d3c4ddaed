package web

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/runtime"
)

// ChatServer drives one gateway per WebSocket connection: a reader goroutine
// feeding the router and a writer goroutine draining the session's outbound
// queue in FIFO order. Parsing failures answer the offending client and keep
// the session open; transport failures tear the session down.
type ChatServer struct {
	log      *slog.Logger
	clock    internal.Clock
	router   contract.IMessageRouter
	sessions *runtime.SessionTable
	registry contract.IRoomRegistry
}

func NewChatServer(log *slog.Logger, clock internal.Clock, router contract.IMessageRouter,
	sessions *runtime.SessionTable, registry contract.IRoomRegistry) *ChatServer {
	return &ChatServer{
		log:      log,
		clock:    clock,
		router:   router,
		sessions: sessions,
		registry: registry,
	}
}

func (s *ChatServer) Register(app *fiber.App) {
	app.Use("/chat", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/chat", websocket.New(s.handle))
}

func (s *ChatServer) handle(conn *websocket.Conn) {
	userID := lo.Ternary(conn.Query("userId") != "",
		conn.Query("userId"),
		fmt.Sprintf("anonymous-%d", internal.EpochMillis(s.clock())))

	session := s.sessions.NewSession(userID)
	s.sessions.Add(session)
	s.router.Welcome(userID)
	s.log.Info("WebSocket connected", "user_id", userID)

	writerDone := make(chan struct{})
	go s.writeLoop(conn, session, writerDone)

	s.readLoop(conn, userID)

	// Teardown: the leave presence goes out before the session is evicted.
	// A superseded session skips the leave, the slot belongs to its successor.
	if current, ok := s.sessions.Get(userID); ok && current == session {
		s.registry.Leave(userID)
	}
	s.sessions.RemoveSession(session)
	<-writerDone
	_ = conn.Close()
	s.log.Info("WebSocket disconnected", "user_id", userID)
}

func (s *ChatServer) readLoop(conn *websocket.Conn, userID string) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("WebSocket read error", "user_id", userID, "error", err)
			}
			return
		}

		var msg domain.ChatMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			// A malformed frame answers the offender and keeps the session.
			s.log.Debug("Malformed frame", "user_id", userID, "error", err)
			s.router.SystemNotice(userID, "malformed frame")
			continue
		}
		s.router.Route(userID, msg)
	}
}

// writeLoop drains the outbound queue until the session is closed. A write
// failure abandons the drain; closing the connection then unblocks the reader
// and the regular teardown runs.
func (s *ChatServer) writeLoop(conn *websocket.Conn, session *domain.Session, done chan<- struct{}) {
	defer close(done)
	for msg := range session.Outbound {
		if err := conn.WriteJSON(msg); err != nil {
			s.log.Warn("WebSocket write failed", "user_id", session.UserID, "error", err)
			_ = conn.Close()
			for range session.Outbound {
				// Discard the rest; the queue closes with the session.
			}
			return
		}
	}
	_ = conn.Close()
}
