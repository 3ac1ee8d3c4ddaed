package services

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/mocks"
	"relay-lab/observability"
)

type routerFixture struct {
	router   *MessageRouter
	sessions *mocks.MockISessionTable
	rooms    *mocks.MockIRoomRegistry
	metrics  *observability.Metrics
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	sessions := mocks.NewMockISessionTable(ctrl)
	rooms := mocks.NewMockIRoomRegistry(ctrl)
	metrics := observability.NewMetrics()
	router := NewMessageRouter(slog.Default(), internal.SystemClock,
		&internal.Sequence{}, metrics, sessions, rooms)
	return &routerFixture{router: router, sessions: sessions, rooms: rooms, metrics: metrics}
}

func systemMessageTo(req *require.Assertions, content string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		msg, ok := x.(domain.ChatMessage)
		if !ok {
			return false
		}
		req.NotZero(msg.ID)
		req.False(msg.Timestamp.IsZero())
		return msg.Type == domain.TypeSystem &&
			msg.Sender == domain.SystemSender &&
			msg.Content == content
	})
}

func TestMessageRouter_JoinRoom(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Then the user moves room and gets a confirmation
	f.rooms.EXPECT().
		JoinOrMove("alice", domain.RoomID("general")).
		Return(domain.Room{ID: "general", Members: []string{"alice"}}).
		Times(1)
	f.sessions.EXPECT().
		PushToUser("alice", systemMessageTo(req, "You joined room: general")).
		Return(true).Times(1)

	// When a join_room frame arrives
	f.router.Route("alice", domain.ChatMessage{Type: domain.TypeJoinRoom, Content: "general"})
}

func TestMessageRouter_ChatWithoutRoom(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Given alice never joined a room
	f.sessions.EXPECT().CurrentRoom("alice").Return(domain.RoomID(""), true).Times(1)
	f.sessions.EXPECT().
		PushToUser("alice", systemMessageTo(req, "You must join a room first")).
		Return(true).Times(1)

	f.router.Route("alice", domain.ChatMessage{Type: domain.TypeChat, Content: "hi"})
}

func TestMessageRouter_ChatBroadcastsToCurrentRoom(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.sessions.EXPECT().CurrentRoom("alice").Return(domain.RoomID("general"), true).Times(1)
	f.rooms.EXPECT().
		Broadcast(domain.RoomID("general"), gomock.Cond(func(x any) bool {
			msg := x.(domain.ChatMessage)
			// The server owns sender, id and timestamp regardless of the frame
			req.Equal("alice", msg.Sender)
			req.NotZero(msg.ID)
			req.False(msg.Timestamp.IsZero())
			return msg.Type == domain.TypeChat && msg.Content == "hi"
		})).
		Return(true).Times(1)

	// The client-supplied sender is overridden
	f.router.Route("alice", domain.ChatMessage{Type: domain.TypeChat, Sender: "mallory", Content: "hi"})
}

func TestMessageRouter_PrivateDelivered(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.sessions.EXPECT().Get("bob").Return(domain.NewSession("bob", 1), true).Times(1)
	f.sessions.EXPECT().
		PushToUser("bob", gomock.Cond(func(x any) bool {
			msg := x.(domain.ChatMessage)
			return msg.Type == domain.TypePrivate && msg.Sender == "alice" && msg.Content == "psst"
		})).
		Return(true).Times(1)
	f.sessions.EXPECT().
		PushToUser("alice", systemMessageTo(req, "Private message sent to bob")).
		Return(true).Times(1)

	f.router.Route("alice", domain.ChatMessage{Type: domain.TypePrivate, Target: "bob", Content: "psst"})
}

func TestMessageRouter_PrivateTargetMissing(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Given no session for the target
	f.sessions.EXPECT().Get("charlie").Return(nil, false).Times(1)
	// Then only the sender hears about it
	f.sessions.EXPECT().
		PushToUser("alice", systemMessageTo(req, "User charlie not found")).
		Return(true).Times(1)

	f.router.Route("alice", domain.ChatMessage{Type: domain.TypePrivate, Target: "charlie", Content: "psst"})
}

func TestMessageRouter_RejectsClientOriginatedSystem(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// When a client tries to forge system and presence frames
	f.router.Route("alice", domain.ChatMessage{Type: domain.TypeSystem, Content: "forged"})
	f.router.Route("alice", domain.ChatMessage{Type: domain.TypePresence, Content: "forged"})

	// Then nothing is routed and the rejections are counted
	req.Equal(uint64(2), f.metrics.Snapshot().RouterRejected)
	req.Equal(uint64(0), f.metrics.Snapshot().MessagesRouted)
}

func TestMessageRouter_Welcome(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.sessions.EXPECT().
		PushToUser("alice", systemMessageTo(req, "Welcome to the chat, alice!")).
		Return(true).Times(1)

	f.router.Welcome("alice")
}
