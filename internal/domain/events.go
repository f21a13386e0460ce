package domain

// EventKind enumerates the canonical event variants the dispatcher handles.
type EventKind int

const (
	KindStreamStarted EventKind = iota
	KindStreamEnded
	KindChatMessage
	KindChatMessageDeleted
	KindReactionAdded
	KindReplaySubmitted
)

func (k EventKind) String() string {
	switch k {
	case KindStreamStarted:
		return "stream_started"
	case KindStreamEnded:
		return "stream_ended"
	case KindChatMessage:
		return "chat_message"
	case KindChatMessageDeleted:
		return "chat_message_deleted"
	case KindReactionAdded:
		return "reaction_added"
	case KindReplaySubmitted:
		return "replay_submitted"
	default:
		return "unknown"
	}
}

// Event is the canonical envelope for anything arriving from an external
// source. Events are immutable once constructed; sources build them and the
// dispatcher consumes them.
type Event interface{ Kind() EventKind }

type StreamStarted struct {
	Stream StreamInfo
}

func (StreamStarted) Kind() EventKind { return KindStreamStarted }

type StreamEnded struct {
	Stream StreamInfo
}

func (StreamEnded) Kind() EventKind { return KindStreamEnded }

type MessageCreated struct {
	Message ChatMessage
}

func (MessageCreated) Kind() EventKind { return KindChatMessage }

type MessageDeleted struct {
	Message ChatMessage
}

func (MessageDeleted) Kind() EventKind { return KindChatMessageDeleted }

type ReactionAdded struct {
	Reaction Reaction
}

func (ReactionAdded) Kind() EventKind { return KindReactionAdded }

type ReplaySubmitted struct {
	Replay ReplayRecord
}

func (ReplaySubmitted) Kind() EventKind { return KindReplaySubmitted }
