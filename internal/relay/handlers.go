package relay

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/errors"
	"github.com/mister-simon/Dustforce/internal/metrics"
	"github.com/mister-simon/Dustforce/internal/notify"
)

const (
	nobodyStreamingReply = "Nobody is streaming."
	gatheringDataReply   = "At least 1 person is streaming. I'll push notification(s) after I finish gathering data."
)

func isStreamsCommand(content string) bool {
	return content == ".streams" || content == "!streams"
}

func (d *Dispatcher) handleStreamStarted(e domain.StreamStarted) {
	d.sink.PushEvent(eventStreamAdded, e.Stream)
	d.deliver(d.general, "<"+e.Stream.URL+"> went live: "+e.Stream.Title)
}

func (d *Dispatcher) handleStreamEnded(e domain.StreamEnded) {
	d.sink.PushEvent(eventStreamDeleted, e.Stream)
}

func (d *Dispatcher) handleMessage(e domain.MessageCreated) {
	msg := e.Message
	if msg.Channel.ID == d.general.ID() && isStreamsCommand(msg.Content) {
		d.deliver(d.general, d.streamsReply())
	}
	d.sink.PushEvent(eventMessageAdd, newMessageEnvelope(msg))
}

// streamsReply builds the command response from a synchronous snapshot of
// live streams. Entries without a resolved URL are skipped; when every entry
// is still unresolved the gathering sentinel is returned instead of an empty
// reply.
func (d *Dispatcher) streamsReply() string {
	streams := d.streams.Streams()
	if len(streams) == 0 {
		return nobodyStreamingReply
	}

	keys := make([]string, 0, len(streams))
	for key := range streams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		stream := streams[key]
		if stream.URL == "" {
			continue
		}
		b.WriteString("<" + stream.URL + "> - " + stream.Title + "\n")
	}

	if b.Len() == 0 {
		return gatheringDataReply
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *Dispatcher) handleMessageDeleted(e domain.MessageDeleted) {
	d.sink.PushEvent(eventMessageDelete, newMessageEnvelope(e.Message))
}

func (d *Dispatcher) handleReactionAdded(e domain.ReactionAdded) {
	if e.Reaction.Channel.Type != "text" {
		return
	}
	payload := newReactionEnvelope(e.Reaction)
	d.sink.PushEvent(eventReactionAdd, payload)
	// TODO: confirm the paired remove push with downstream consumers; no
	// gateway handler exists for actual reaction removals, so subscribers
	// currently see a remove immediately after every add.
	d.sink.PushEvent(eventReactionRemove, payload)
}

func (d *Dispatcher) handleReplay(e domain.ReplaySubmitted) {
	replay := e.Replay
	d.sink.PushEvent(eventReplay, replay)

	if replay.ScoreRankIsPB {
		d.notifyReplay(replay, notify.MetricScore, replay.PreviousScore)
	}
	if replay.TimeRankIsPB {
		d.notifyReplay(replay, notify.MetricTime, replay.PreviousTime)
	}
}

func (d *Dispatcher) notifyReplay(replay domain.ReplayRecord, metric notify.Metric, previous *domain.ReplayRecord) {
	notification, err := notify.Render(replay, metric, previous)
	if err != nil {
		if errors.IsType(err, errors.TypeUnrenderable) {
			metrics.UnrenderableReplays.Inc()
			slog.Debug("Skipping replay notification",
				"replay_id", replay.ReplayID, "level", replay.LevelName, "error", err)
			return
		}
		slog.Error("Failed to render replay notification",
			"replay_id", replay.ReplayID, "error", err)
		return
	}
	d.deliver(d.leaderboard, notification)
}
