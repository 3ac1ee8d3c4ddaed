package services

import (
	"fmt"
	"log/slog"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/observability"
)

var _ contract.IMessageRouter = (*MessageRouter)(nil)

// MessageRouter interprets one inbound envelope on behalf of an authenticated
// user. The sender is always overridden with the connection's user id, and
// every outbound message leaves with a server-assigned id and timestamp.
type MessageRouter struct {
	log      *slog.Logger
	clock    internal.Clock
	seq      *internal.Sequence
	metrics  *observability.Metrics
	sessions contract.ISessionTable
	rooms    contract.IRoomRegistry
}

func NewMessageRouter(log *slog.Logger, clock internal.Clock, seq *internal.Sequence,
	metrics *observability.Metrics, sessions contract.ISessionTable,
	rooms contract.IRoomRegistry) *MessageRouter {
	return &MessageRouter{
		log:      log,
		clock:    clock,
		seq:      seq,
		metrics:  metrics,
		sessions: sessions,
		rooms:    rooms,
	}
}

func (r *MessageRouter) Route(sender string, msg domain.ChatMessage) {
	if !domain.InboundType(msg.Type) {
		// Clients must not originate system or presence messages.
		r.metrics.IncrRouterRejected()
		r.log.Debug("Rejected client-originated message", "type", msg.Type, "sender", sender)
		return
	}

	msg.Sender = sender
	msg.ID = r.seq.Next()
	msg.Timestamp = r.clock()
	r.metrics.IncrMessagesRouted()

	switch msg.Type {
	case domain.TypeJoinRoom:
		r.handleJoinRoom(sender, msg)
	case domain.TypeChat:
		r.handleChat(sender, msg)
	case domain.TypePrivate:
		r.handlePrivate(sender, msg)
	}
}

func (r *MessageRouter) handleJoinRoom(sender string, msg domain.ChatMessage) {
	roomID := domain.RoomID(msg.Content)
	room := r.rooms.JoinOrMove(sender, roomID)
	r.SystemNotice(sender, fmt.Sprintf("You joined room: %s", roomID))
	r.log.Info("User joined room", "user_id", sender, "room_id", roomID, "members", len(room.Members))
}

func (r *MessageRouter) handleChat(sender string, msg domain.ChatMessage) {
	roomID, ok := r.sessions.CurrentRoom(sender)
	if !ok || roomID == "" {
		r.SystemNotice(sender, "You must join a room first")
		return
	}
	r.rooms.Broadcast(roomID, msg)
}

func (r *MessageRouter) handlePrivate(sender string, msg domain.ChatMessage) {
	if msg.Target == "" {
		r.SystemNotice(sender, fmt.Sprintf("User %s not found", msg.Target))
		return
	}
	if _, ok := r.sessions.Get(msg.Target); !ok {
		r.SystemNotice(sender, fmt.Sprintf("User %s not found", msg.Target))
		return
	}
	r.sessions.PushToUser(msg.Target, msg)
	r.SystemNotice(sender, fmt.Sprintf("Private message sent to %s", msg.Target))
}

// Welcome greets a freshly connected user.
func (r *MessageRouter) Welcome(userID string) {
	r.SystemNotice(userID, fmt.Sprintf("Welcome to the chat, %s!", userID))
}

// SystemNotice pushes a server-originated system message to one user.
func (r *MessageRouter) SystemNotice(userID string, content string) {
	r.sessions.PushToUser(userID, domain.ChatMessage{
		ID:        r.seq.Next(),
		Type:      domain.TypeSystem,
		Sender:    domain.SystemSender,
		Content:   content,
		Timestamp: r.clock(),
	})
}
