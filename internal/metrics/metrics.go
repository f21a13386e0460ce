package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay metrics
var (
	// EventsRelayed tracks envelopes pushed to the broadcast bus by event name.
	EventsRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_total",
			Help: "Envelopes pushed to the broadcast bus by event name",
		},
		[]string{"event"},
	)

	// NotificationsDelivered tracks successful chat notification deliveries.
	NotificationsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_notifications_delivered_total",
			Help: "Chat notifications delivered successfully",
		},
	)

	// NotificationFailures tracks failed deliveries by failure kind.
	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_notification_failures_total",
			Help: "Chat notification delivery failures by kind",
		},
		[]string{"kind"},
	)

	// UnrenderableReplays tracks replays skipped for lack of a display mapping.
	UnrenderableReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_unrenderable_replays_total",
			Help: "PB replays skipped because the level has no thumbnail entry",
		},
	)
)

// Bus metrics
var (
	// BusSubscribers tracks currently connected broadcast subscribers.
	BusSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bus_subscribers",
			Help: "Currently connected broadcast subscribers",
		},
	)

	// BusSlowSubscribersEvicted tracks subscribers dropped for a full send buffer.
	BusSlowSubscribersEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bus_slow_subscribers_evicted_total",
			Help: "Subscribers disconnected because their send buffer was full",
		},
	)
)

// Source metrics
var (
	// ReplayFeedReconnects tracks reconnects to the replay feed.
	ReplayFeedReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "replay_feed_reconnects_total",
			Help: "Reconnect attempts to the replay feed",
		},
	)

	// TwitchPollErrors tracks failed stream list polls.
	TwitchPollErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "twitch_poll_errors_total",
			Help: "Failed Twitch stream list polls",
		},
	)
)
