package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/observability"
	"relay-lab/runtime/workers"
)

var _ contract.IRoomRegistry = (*RoomRegistry)(nil)

// RoomRegistry maintains per-room membership and the bounded broadcast sink
// feeding each room's fan-out worker. Rooms are created lazily on first join
// and destroyed atomically with the last leave, which also retires the
// worker by closing its sink.
type RoomRegistry struct {
	log        *slog.Logger
	clock      internal.Clock
	seq        *internal.Sequence
	metrics    *observability.Metrics
	sessions   contract.ISessionTable
	supervisor contract.ISupervisor
	bufferSize int

	ctx   context.Context
	mu    sync.RWMutex
	rooms map[domain.RoomID]*roomState
}

type roomState struct {
	members   map[string]struct{}
	broadcast chan domain.ChatMessage
	// pushMu serializes producers with each other and with the close on
	// room destruction, so drop-oldest stays well defined and no producer
	// can hit a closed sink.
	pushMu sync.Mutex
	closed bool
}

func NewRoomRegistry(log *slog.Logger, clock internal.Clock, seq *internal.Sequence,
	metrics *observability.Metrics, sessions contract.ISessionTable,
	supervisor contract.ISupervisor, bufferSize int) *RoomRegistry {
	return &RoomRegistry{
		log:        log,
		clock:      clock,
		seq:        seq,
		metrics:    metrics,
		sessions:   sessions,
		supervisor: supervisor,
		bufferSize: bufferSize,
		ctx:        context.Background(),
		rooms:      make(map[domain.RoomID]*roomState),
	}
}

// Bind fixes the context under which fan-out workers are supervised.
// Must be called before the first join.
func (r *RoomRegistry) Bind(ctx context.Context) {
	r.ctx = ctx
}

// JoinOrMove removes the user from any current room (announcing the leave
// there), adds them to roomID, and announces the join to the new room.
// Returns a snapshot of the room after the move.
func (r *RoomRegistry) JoinOrMove(userID string, roomID domain.RoomID) domain.Room {
	r.mu.Lock()

	if current, ok := r.sessions.CurrentRoom(userID); ok && current != "" {
		r.removeMemberLocked(userID, current)
	}

	state, ok := r.rooms[roomID]
	if !ok {
		state = &roomState{
			members:   make(map[string]struct{}),
			broadcast: make(chan domain.ChatMessage, r.bufferSize),
		}
		r.rooms[roomID] = state
		r.supervisor.Start(r.ctx, workers.NewRoomFanout(r.log, roomID, state.broadcast, r, r.sessions))
		r.log.Debug("Room created", "room_id", roomID)
	}
	state.members[userID] = struct{}{}
	r.sessions.SetCurrentRoom(userID, roomID)
	room := domain.Room{ID: roomID, Members: memberSnapshot(state)}
	r.mu.Unlock()

	r.Broadcast(roomID, r.presence(fmt.Sprintf("%s joined the room", userID)))
	return room
}

func memberSnapshot(state *roomState) []string {
	members := make([]string, 0, len(state.members))
	for userID := range state.members {
		members = append(members, userID)
	}
	return members
}

// Leave removes the user from their current room, if any, and announces the
// leave to the remaining members.
func (r *RoomRegistry) Leave(userID string) {
	current, ok := r.sessions.CurrentRoom(userID)
	if !ok || current == "" {
		return
	}

	r.mu.Lock()
	r.removeMemberLocked(userID, current)
	r.mu.Unlock()
}

// removeMemberLocked detaches the user from roomID and either announces the
// leave or, when the room emptied, destroys it in the same critical section.
func (r *RoomRegistry) removeMemberLocked(userID string, roomID domain.RoomID) {
	state, ok := r.rooms[roomID]
	if !ok {
		return
	}
	delete(state.members, userID)
	r.sessions.SetCurrentRoom(userID, "")

	if len(state.members) == 0 {
		delete(r.rooms, roomID)
		state.pushMu.Lock()
		state.closed = true
		close(state.broadcast)
		state.pushMu.Unlock()
		r.log.Debug("Room destroyed with last leave", "room_id", roomID)
		return
	}
	r.enqueue(state, r.presence(fmt.Sprintf("%s left the room", userID)))
}

// Broadcast enqueues on the room's fan-out sink with drop-oldest overflow.
// Returns false when the room does not exist.
func (r *RoomRegistry) Broadcast(roomID domain.RoomID, msg domain.ChatMessage) bool {
	r.mu.RLock()
	state, ok := r.rooms[roomID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	r.enqueue(state, msg)
	return true
}

func (r *RoomRegistry) enqueue(state *roomState, msg domain.ChatMessage) {
	state.pushMu.Lock()
	defer state.pushMu.Unlock()
	if state.closed {
		return
	}

	select {
	case state.broadcast <- msg:
		return
	default:
	}
	select {
	case <-state.broadcast:
		r.metrics.IncrRoomDrop()
	default:
	}
	select {
	case state.broadcast <- msg:
	default:
		r.metrics.IncrRoomDrop()
	}
}

// Members returns a snapshot of the room's member ids.
func (r *RoomRegistry) Members(roomID domain.RoomID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	return memberSnapshot(state)
}

func (r *RoomRegistry) presence(content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        r.seq.Next(),
		Type:      domain.TypePresence,
		Sender:    domain.SystemSender,
		Content:   content,
		Timestamp: r.clock(),
	}
}
