package llm

import (
	"github.com/google/uuid"
)

// Token is an opaque correlation value echoed back in every notification
// belonging to one streaming invocation. Callers may supply any value that
// is meaningful to them; NewToken mints a unique one.
type Token string

// NewToken mints a fresh correlation token.
func NewToken() Token {
	return Token(uuid.NewString())
}

// NotificationKind tags the payload of a streaming notification.
type NotificationKind string

const (
	// NotificationChunk carries one content fragment in arrival order.
	NotificationChunk NotificationKind = "chunk"
	// NotificationDone terminates a streaming invocation successfully.
	NotificationDone NotificationKind = "done"
	// NotificationError terminates a streaming invocation with an error
	// description. Chunks collected before the failure are still delivered
	// ahead of it.
	NotificationError NotificationKind = "error"
)

// Notification is one asynchronous message delivered to the caller during a
// streaming invocation. Text holds the content fragment for chunk
// notifications and the error description for error notifications.
type Notification struct {
	Kind  NotificationKind
	Token Token
	Text  string
}

// ChunkNotification builds a chunk notification.
func ChunkNotification(token Token, text string) Notification {
	return Notification{Kind: NotificationChunk, Token: token, Text: text}
}

// DoneNotification builds the successful terminal notification.
func DoneNotification(token Token) Notification {
	return Notification{Kind: NotificationDone, Token: token}
}

// ErrorNotification builds the failing terminal notification.
func ErrorNotification(token Token, message string) Notification {
	return Notification{Kind: NotificationError, Token: token, Text: message}
}

// Sink receives asynchronous notifications on behalf of a caller identity.
// It stands in for the host runtime's "send message to caller" primitive.
// Send must not block indefinitely; streaming delivery happens inline on the
// invoking goroutine.
type Sink interface {
	Send(n Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Notification)

// Send implements Sink.
func (f SinkFunc) Send(n Notification) {
	f(n)
}

type chanSink chan<- Notification

func (c chanSink) Send(n Notification) {
	c <- n
}

// ChanSink adapts a channel to the Sink interface. The channel should be
// buffered or drained concurrently: delivery blocks the streaming call.
func ChanSink(ch chan<- Notification) Sink {
	return chanSink(ch)
}
