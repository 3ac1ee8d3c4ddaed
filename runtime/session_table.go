package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/observability"
)

var _ contract.ISessionTable = (*SessionTable)(nil)

// SessionTable is the registry of connected chat sessions. The table map has
// its own lock; each session queue is guarded separately so one slow consumer
// never serializes pushes to the others.
type SessionTable struct {
	log        *slog.Logger
	clock      internal.Clock
	seq        *internal.Sequence
	metrics    *observability.Metrics
	bufferSize int

	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu     sync.Mutex
	sess   *domain.Session
	closed bool
}

func NewSessionTable(log *slog.Logger, clock internal.Clock, seq *internal.Sequence,
	metrics *observability.Metrics, bufferSize int) *SessionTable {
	return &SessionTable{
		log:        log,
		clock:      clock,
		seq:        seq,
		metrics:    metrics,
		bufferSize: bufferSize,
		entries:    make(map[string]*sessionEntry),
	}
}

// NewSession builds a session sized for this table.
func (s *SessionTable) NewSession(userID string) *domain.Session {
	return domain.NewSession(userID, s.bufferSize)
}

// Add registers the session. A second connect with the same user id
// supersedes the first: the older session receives a system notice, its
// outbound queue is closed, and the new session takes the slot.
func (s *SessionTable) Add(session *domain.Session) {
	s.mu.Lock()
	old := s.entries[session.UserID]
	s.entries[session.UserID] = &sessionEntry{sess: session}
	s.mu.Unlock()

	if old != nil {
		notice := s.stamp(domain.ChatMessage{
			Type:    domain.TypeSystem,
			Sender:  domain.SystemSender,
			Content: "Your session was replaced by a new connection",
		})
		s.pushEntry(old, notice)
		s.closeEntry(old)
		s.log.Info("Session superseded by a new connection", "user_id", session.UserID)
	}
}

// RemoveSession evicts the session, but only while the table still maps this exact
// session. The stale teardown of a superseded connection is a no-op.
func (s *SessionTable) RemoveSession(session *domain.Session) {
	s.mu.Lock()
	entry, ok := s.entries[session.UserID]
	if ok && entry.sess == session {
		delete(s.entries, session.UserID)
	} else {
		entry = nil
	}
	s.mu.Unlock()

	if entry != nil {
		s.closeEntry(entry)
	}
}

// Remove evicts whatever session currently holds the user id.
func (s *SessionTable) Remove(userID string) {
	s.mu.Lock()
	entry, ok := s.entries[userID]
	if ok {
		delete(s.entries, userID)
	}
	s.mu.Unlock()

	if ok {
		s.closeEntry(entry)
	}
}

func (s *SessionTable) Get(userID string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[userID]
	if !ok {
		return nil, false
	}
	return entry.sess, true
}

// PushToUser enqueues on the user's outbound FIFO. When the queue is full the
// oldest undelivered message is dropped and counted; the push itself then
// succeeds. Returns false when the user is not connected.
func (s *SessionTable) PushToUser(userID string, msg domain.ChatMessage) bool {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return s.pushEntry(entry, msg)
}

func (s *SessionTable) pushEntry(entry *sessionEntry, msg domain.ChatMessage) bool {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return false
	}

	select {
	case entry.sess.Outbound <- msg:
		return true
	default:
	}

	// Full queue: make room by discarding the oldest pending message.
	select {
	case <-entry.sess.Outbound:
		s.metrics.IncrSessionDrop()
	default:
	}
	select {
	case entry.sess.Outbound <- msg:
		return true
	default:
		s.metrics.IncrSessionDrop()
		return false
	}
}

func (s *SessionTable) closeEntry(entry *sessionEntry) {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !entry.closed {
		entry.closed = true
		close(entry.sess.Outbound)
	}
}

func (s *SessionTable) CurrentRoom(userID string) (domain.RoomID, bool) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.sess.CurrentRoom, true
}

func (s *SessionTable) SetCurrentRoom(userID string, roomID domain.RoomID) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.sess.CurrentRoom = roomID
}

// Shutdown pushes a final system notice to every session and closes them all.
func (s *SessionTable) Shutdown(reason string) {
	s.mu.Lock()
	entries := make([]*sessionEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	s.entries = make(map[string]*sessionEntry)
	s.mu.Unlock()

	notice := s.stamp(domain.ChatMessage{
		Type:    domain.TypeSystem,
		Sender:  domain.SystemSender,
		Content: reason,
	})
	for _, entry := range entries {
		s.pushEntry(entry, notice)
		s.closeEntry(entry)
	}
	s.log.Info(fmt.Sprintf("Closed %d sessions on shutdown", len(entries)))
}

func (s *SessionTable) stamp(msg domain.ChatMessage) domain.ChatMessage {
	msg.ID = s.seq.Next()
	msg.Timestamp = s.clock()
	return msg
}
