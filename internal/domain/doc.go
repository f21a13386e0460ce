// Package domain defines the canonical event model and cross-cutting interfaces.
//
// Concept-oriented files (events.go, chat.go, replay.go, stream.go, ...) hold
// the normalized shapes external events are coerced into, plus the ports the
// dispatcher talks to (EventSink, Session, StreamLister). No implementation
// code - just contracts.
package domain
