package domain

// EventSink fans normalized envelopes out to subscribers. Fire-and-forget;
// no acknowledgment is expected.
type EventSink interface {
	PushEvent(name string, payload any)
}

// Session is the live chat-platform connection. Delivery channels resolve
// liveness and destination existence against it at send time rather than
// caching channel objects, since a channel may not exist yet or may
// disappear. Implementations must be safe for concurrent use.
type Session interface {
	// Open reports whether the underlying gateway connection is live.
	Open() bool
	// HasChannel reports whether the connection can currently resolve the
	// channel with the given ID.
	HasChannel(id string) bool
	SendText(channelID, content string) error
	SendEmbed(channelID string, n *Notification) error
}
