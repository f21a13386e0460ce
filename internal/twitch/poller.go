// Package twitch polls the Helix API for live Dustforce streams and turns
// snapshot changes into canonical stream events.
package twitch

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nicklaw5/helix/v2"

	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/metrics"
)

// dustforceGameID is the Helix category ID for Dustforce DX.
const dustforceGameID = "30921"

const streamsPageSize = 100

// helixAPI is the slice of the Helix client the poller needs; tests
// substitute a fake.
type helixAPI interface {
	GetStreams(params *helix.StreamsParams) (*helix.StreamsResponse, error)
	GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error)
}

// Poller maintains the snapshot of live streams, keyed by user ID.
//
// A stream's title is known from the first streams poll, but its URL needs a
// follow-up user lookup to resolve the login name. Until that lookup
// succeeds the snapshot entry has an empty URL and no StreamStarted event is
// emitted; lookups that fail are retried on the next tick.
type Poller struct {
	api      helixAPI
	post     func(domain.Event)
	clock    clockwork.Clock
	interval time.Duration

	mu      sync.Mutex
	streams map[string]domain.StreamInfo

	done chan struct{}
}

// NewPoller creates the poller. Start begins polling.
func NewPoller(api helixAPI, post func(domain.Event), clock clockwork.Clock, interval time.Duration) *Poller {
	return &Poller{
		api:      api,
		post:     post,
		clock:    clock,
		interval: interval,
		streams:  make(map[string]domain.StreamInfo),
		done:     make(chan struct{}),
	}
}

// Start launches the poll loop. An immediate poll runs before the first tick.
func (p *Poller) Start() {
	go p.run()
}

// Stop terminates the poll loop.
func (p *Poller) Stop() {
	close(p.done)
}

// Streams returns a copy of the current snapshot. Safe to call from any
// goroutine; the caller owns the returned map.
func (p *Poller) Streams() map[string]domain.StreamInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make(map[string]domain.StreamInfo, len(p.streams))
	for key, stream := range p.streams {
		copied[key] = stream
	}
	return copied
}

func (p *Poller) run() {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-ticker.Chan():
			p.poll()
		case <-p.done:
			return
		}
	}
}

func (p *Poller) poll() {
	resp, err := p.api.GetStreams(&helix.StreamsParams{
		GameIDs: []string{dustforceGameID},
		First:   streamsPageSize,
	})
	if err != nil {
		metrics.TwitchPollErrors.Inc()
		slog.Warn("Stream list poll failed", "error", err)
		return
	}
	if resp.StatusCode != 200 {
		metrics.TwitchPollErrors.Inc()
		slog.Warn("Stream list poll rejected",
			"status", resp.StatusCode, "error", resp.ErrorMessage)
		return
	}

	live := make(map[string]helix.Stream, len(resp.Data.Streams))
	for _, stream := range resp.Data.Streams {
		live[stream.UserID] = stream
	}

	p.mu.Lock()
	var pending []string
	for key, stream := range live {
		known, exists := p.streams[key]
		if !exists {
			p.streams[key] = domain.StreamInfo{Key: key, Title: stream.Title}
			pending = append(pending, key)
			continue
		}
		known.Title = stream.Title
		p.streams[key] = known
		if known.URL == "" {
			pending = append(pending, key)
		}
	}

	var ended []domain.StreamInfo
	for key, stream := range p.streams {
		if _, stillLive := live[key]; !stillLive {
			ended = append(ended, stream)
			delete(p.streams, key)
		}
	}
	p.mu.Unlock()

	for _, stream := range ended {
		p.post(domain.StreamEnded{Stream: stream})
	}

	if len(pending) > 0 {
		p.resolveURLs(pending)
	}
}

// resolveURLs looks up the login names for streams whose URL is still
// unknown and emits StreamStarted for each one that resolves.
func (p *Poller) resolveURLs(keys []string) {
	resp, err := p.api.GetUsers(&helix.UsersParams{IDs: keys})
	if err != nil {
		slog.Warn("User lookup failed", "error", err)
		return
	}
	if resp.StatusCode != 200 {
		slog.Warn("User lookup rejected",
			"status", resp.StatusCode, "error", resp.ErrorMessage)
		return
	}

	var started []domain.StreamInfo
	p.mu.Lock()
	for _, user := range resp.Data.Users {
		stream, exists := p.streams[user.ID]
		if !exists || stream.URL != "" {
			continue
		}
		stream.URL = "https://www.twitch.tv/" + user.Login
		p.streams[user.ID] = stream
		started = append(started, stream)
	}
	p.mu.Unlock()

	for _, stream := range started {
		slog.Info("Stream went live", "url", stream.URL, "title", stream.Title)
		p.post(domain.StreamStarted{Stream: stream})
	}
}
