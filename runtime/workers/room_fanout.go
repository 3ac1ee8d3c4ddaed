package workers

import (
	"context"
	"log/slog"

	"relay-lab/contract"
	"relay-lab/domain"
)

var _ contract.Worker = (*RoomFanout)(nil)

// RoomFanout drains one room's broadcast sink and replicates every message
// onto the outbound queue of each current member. A single consumer per room
// keeps delivery order identical for all subscribers; overflow of a member's
// own queue is the session table's problem, not the room's.
type RoomFanout struct {
	log       *slog.Logger
	roomID    domain.RoomID
	broadcast <-chan domain.ChatMessage
	registry  contract.IRoomRegistry
	sessions  contract.ISessionTable
}

func NewRoomFanout(log *slog.Logger, roomID domain.RoomID, broadcast <-chan domain.ChatMessage,
	registry contract.IRoomRegistry, sessions contract.ISessionTable) *RoomFanout {
	return &RoomFanout{
		log:       log,
		roomID:    roomID,
		broadcast: broadcast,
		registry:  registry,
		sessions:  sessions,
	}
}

func (w *RoomFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping room fanout", "room_id", w.roomID)
			return nil
		case msg, ok := <-w.broadcast:
			if !ok {
				// Sink closed with the last leave: the room is gone.
				return nil
			}
			for _, userID := range w.registry.Members(w.roomID) {
				w.sessions.PushToUser(userID, msg)
			}
		}
	}
}
