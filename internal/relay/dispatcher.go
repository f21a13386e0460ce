// Package relay normalizes events from the chat, streaming and replay
// sources and fans them out: every event becomes a bus envelope, and notable
// ones additionally become chat notifications.
//
// The dispatcher is a single-goroutine actor. Sources post canonical events
// onto its channel and each event is handled to completion before the next;
// only the delivery result wait happens off the loop, as a fire-and-forget
// continuation that does nothing but log and count.
package relay

import (
	"context"
	"log/slog"

	"github.com/mister-simon/Dustforce/internal/discord"
	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/errors"
	"github.com/mister-simon/Dustforce/internal/metrics"
)

const eventBufferSize = 256

// Dispatcher relays canonical events to the broadcast bus and the chat
// notification channels.
type Dispatcher struct {
	events      chan domain.Event
	sink        domain.EventSink
	general     *discord.Channel
	leaderboard *discord.Channel
	streams     domain.StreamLister
	done        chan struct{}
}

// New creates the dispatcher and starts its run loop. general receives
// stream and command replies, leaderboard receives replay notifications;
// both may address the same underlying channel.
func New(sink domain.EventSink, general, leaderboard *discord.Channel, streams domain.StreamLister) *Dispatcher {
	d := &Dispatcher{
		events:      make(chan domain.Event, eventBufferSize),
		sink:        sink,
		general:     general,
		leaderboard: leaderboard,
		streams:     streams,
		done:        make(chan struct{}),
	}
	go d.run()
	return d
}

// Post hands a canonical event to the dispatcher. Safe for concurrent use
// by all sources; events are serialized by the run loop.
func (d *Dispatcher) Post(ev domain.Event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// Stop shuts down the run loop. Events posted after Stop are dropped.
func (d *Dispatcher) Stop() {
	close(d.done)
}

func (d *Dispatcher) run() {
	for {
		select {
		case ev := <-d.events:
			d.handle(ev)
		case <-d.done:
			return
		}
	}
}

func (d *Dispatcher) handle(ev domain.Event) {
	switch e := ev.(type) {
	case domain.StreamStarted:
		d.handleStreamStarted(e)
	case domain.StreamEnded:
		d.handleStreamEnded(e)
	case domain.MessageCreated:
		d.handleMessage(e)
	case domain.MessageDeleted:
		d.handleMessageDeleted(e)
	case domain.ReactionAdded:
		d.handleReactionAdded(e)
	case domain.ReplaySubmitted:
		d.handleReplay(e)
	default:
		slog.Error("Dispatcher: unknown event", "kind", ev.Kind().String())
	}
}

// deliver fires a send and consumes its deferred result off the loop.
// Failures are logged and counted, never retried and never propagated;
// a hung transport call only ever parks this one goroutine.
func (d *Dispatcher) deliver(channel *discord.Channel, payload any) {
	result := channel.Send(payload)
	go func() {
		err := <-result
		if err == nil {
			metrics.NotificationsDelivered.Inc()
			return
		}
		structured := errors.AsStructuredError(err)
		metrics.NotificationFailures.WithLabelValues(string(structured.Type)).Inc()
		slog.Log(context.Background(), structured.LogLevel(), "Notification delivery failed",
			"channel", channel.Name(), "error", err)
	}()
}
