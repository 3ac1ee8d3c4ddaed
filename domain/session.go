package domain

// Session is the server-side state of one connected chat client.
// Outbound is a bounded FIFO drained by the connection's writer loop;
// overflow is resolved by dropping the oldest undelivered message.
type Session struct {
	UserID      string
	Outbound    chan ChatMessage
	CurrentRoom RoomID
}

func NewSession(userID string, bufferSize int) *Session {
	return &Session{
		UserID:   userID,
		Outbound: make(chan ChatMessage, bufferSize),
	}
}
