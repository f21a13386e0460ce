// Package bus implements the broadcast bus: a hub fanning normalized event
// envelopes out to persistent websocket subscriber connections.
//
// The hub is a single-goroutine actor driven by a command channel; all
// subscriber state lives inside the run loop and needs no locks. Slow
// subscribers (full send buffer) are evicted rather than allowed to stall
// the fan-out.
package bus

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mister-simon/Dustforce/internal/metrics"
)

type hubCmd interface{ isHubCmd() }

type baseHubCmd struct{}

func (baseHubCmd) isHubCmd() {}

type subscribeCmd struct {
	baseHubCmd
	connection   *websocket.Conn
	replyChannel chan uuid.UUID
}

type unsubscribeCmd struct {
	baseHubCmd
	id uuid.UUID
}

type pushCmd struct {
	baseHubCmd
	data []byte
}

type countCmd struct {
	baseHubCmd
	replyChannel chan int
}

type stopCmd struct {
	baseHubCmd
}

// envelope is the wire shape every bus frame uses.
type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type subscriber struct {
	connection *websocket.Conn
	writer     *subscriberWriter
}

// Hub fans event envelopes out to all connected subscribers.
type Hub struct {
	cmdCh       chan hubCmd
	subscribers map[uuid.UUID]*subscriber
}

// NewHub creates the hub and starts its run loop.
func NewHub() *Hub {
	h := &Hub{
		cmdCh:       make(chan hubCmd, 256),
		subscribers: make(map[uuid.UUID]*subscriber),
	}
	go h.run()
	return h
}

// Subscribe registers a connection and returns its subscriber ID.
func (h *Hub) Subscribe(conn *websocket.Conn) uuid.UUID {
	replyCh := make(chan uuid.UUID, 1)
	h.cmdCh <- subscribeCmd{connection: conn, replyChannel: replyCh}
	return <-replyCh
}

// Unsubscribe removes a subscriber and closes its writer.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.cmdCh <- unsubscribeCmd{id: id}
}

// PushEvent broadcasts one named envelope to every subscriber.
// Fire-and-forget; marshal failures are logged and dropped.
func (h *Hub) PushEvent(name string, payload any) {
	data, err := json.Marshal(envelope{Event: name, Payload: payload})
	if err != nil {
		slog.Error("Failed to marshal bus envelope", "event", name, "error", err)
		return
	}
	metrics.EventsRelayed.WithLabelValues(name).Inc()
	h.cmdCh <- pushCmd{data: data}
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	replyCh := make(chan int, 1)
	h.cmdCh <- countCmd{replyChannel: replyCh}
	return <-replyCh
}

// Stop shuts down the hub, closing all subscriber connections.
func (h *Hub) Stop() {
	h.cmdCh <- stopCmd{}
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case subscribeCmd:
			h.handleSubscribe(c)
		case unsubscribeCmd:
			h.handleUnsubscribe(c.id)
		case pushCmd:
			h.handlePush(c.data)
		case countCmd:
			c.replyChannel <- len(h.subscribers)
		case stopCmd:
			h.handleStop()
			return
		default:
			slog.Error("Hub: unknown command", "type", cmd)
		}
	}
}

func (h *Hub) handleSubscribe(c subscribeCmd) {
	id := uuid.New()
	h.subscribers[id] = &subscriber{
		connection: c.connection,
		writer:     newSubscriberWriter(c.connection),
	}
	metrics.BusSubscribers.Set(float64(len(h.subscribers)))
	slog.Info("Subscriber connected", "subscriber_id", id.String(), "total", len(h.subscribers))
	c.replyChannel <- id
}

func (h *Hub) handleUnsubscribe(id uuid.UUID) {
	sub, exists := h.subscribers[id]
	if !exists {
		return
	}
	sub.writer.stop()
	delete(h.subscribers, id)
	metrics.BusSubscribers.Set(float64(len(h.subscribers)))
	slog.Info("Subscriber disconnected", "subscriber_id", id.String(), "remaining", len(h.subscribers))
}

func (h *Hub) handlePush(data []byte) {
	var slow []uuid.UUID
	for id, sub := range h.subscribers {
		select {
		case sub.writer.sendChannel <- data:
		default:
			slow = append(slow, id)
		}
	}

	for _, id := range slow {
		slog.Warn("Evicting slow subscriber", "subscriber_id", id.String())
		metrics.BusSlowSubscribersEvicted.Inc()
		h.handleUnsubscribe(id)
	}
}

func (h *Hub) handleStop() {
	for id, sub := range h.subscribers {
		sub.writer.stop()
		delete(h.subscribers, id)
	}
	metrics.BusSubscribers.Set(0)
}
