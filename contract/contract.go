//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"relay-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused. Supervision lives above it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ITaskTable is the concurrent registry of task records.
// Status transitions are serialized per record; terminal statuses are sticky.
type ITaskTable interface {
	InsertInitial(record domain.TaskRecord) error
	MarkCompleted(taskID string, result domain.DataProcessingResult) error
	MarkFailed(taskID string, errorMessage string) error
	Get(taskID string) (domain.TaskRecord, bool)
	// GetAndMaybeRemove returns the record and, when it is COMPLETED, removes it
	// from the table within the same critical section.
	GetAndMaybeRemove(taskID string) (domain.TaskRecord, bool)
	ListIDs() []string
}

// IProcessor executes one unit of synthetic work.
type IProcessor interface {
	Run(ctx context.Context, req domain.DataProcessingRequest) (domain.DataProcessingResult, error)
}

// ISessionTable is the registry of connected chat sessions keyed by user id.
type ISessionTable interface {
	// Add registers the session. A duplicate user id supersedes the previous
	// session: the older one receives a system notice and is closed.
	Add(session *domain.Session)
	Remove(userID string)
	Get(userID string) (*domain.Session, bool)
	// PushToUser enqueues on the user's outbound FIFO, dropping the oldest entry
	// on overflow. Returns false when the user is not connected.
	PushToUser(userID string, msg domain.ChatMessage) bool
	CurrentRoom(userID string) (domain.RoomID, bool)
	SetCurrentRoom(userID string, roomID domain.RoomID)
}

// IRoomRegistry maintains per-room membership and the broadcast fan-out.
type IRoomRegistry interface {
	// JoinOrMove detaches the user from any current room and adds them to
	// roomID, returning a snapshot of the room after the move.
	JoinOrMove(userID string, roomID domain.RoomID) domain.Room
	Leave(userID string)
	// Broadcast enqueues on the room's fan-out sink, dropping the oldest pending
	// message on overflow. Returns false when the room does not exist.
	Broadcast(roomID domain.RoomID, msg domain.ChatMessage) bool
	Members(roomID domain.RoomID) []string
}

// IMessageRouter interprets one inbound envelope on behalf of a user.
type IMessageRouter interface {
	Route(sender string, msg domain.ChatMessage)
	Welcome(userID string)
	SystemNotice(userID string, content string)
}
