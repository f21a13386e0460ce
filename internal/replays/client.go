// Package replays consumes the dustkid replay feed over a websocket and
// emits canonical replay events.
package replays

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/metrics"
	"github.com/mister-simon/Dustforce/internal/platform/retry"
)

const (
	dialTimeout      = 10 * time.Second
	readLimit        = 1 << 20
	reconnectBackoff = 5 * time.Second
	maxBackoff       = 5 * time.Minute
)

// Client keeps a connection to the replay feed alive, decoding every frame
// into a replay record and posting it as a canonical event. Frames that fail
// to decode are logged and skipped; the feed occasionally interleaves
// heartbeat frames this process has no use for.
type Client struct {
	feedURL string
	post    func(domain.Event)
	dialer  *websocket.Dialer

	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates the feed client. Start begins the connect loop.
func NewClient(feedURL string, post func(domain.Event)) *Client {
	return &Client{
		feedURL: feedURL,
		post:    post,
		dialer:  &websocket.Dialer{HandshakeTimeout: dialTimeout},
		done:    make(chan struct{}),
	}
}

// Start launches the connect/read loop.
func (c *Client) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.run(ctx)
}

// Stop terminates the loop and waits for it to exit.
func (c *Client) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	policy := retry.Policy{
		InitialBackoff: reconnectBackoff,
		MaxBackoff:     maxBackoff,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			metrics.ReplayFeedReconnects.Inc()
			slog.Warn("Replay feed connect failed",
				"attempt", attempt, "backoff", backoff.String(), "error", err)
		},
	}

	for {
		conn, err := retry.Do(ctx, policy, nil, func() (*websocket.Conn, error) {
			conn, _, dialErr := c.dialer.DialContext(ctx, c.feedURL, nil)
			return conn, dialErr
		})
		if err != nil {
			// Only context cancellation escapes an unlimited policy.
			return
		}

		slog.Info("Replay feed connected", "url", c.feedURL)
		c.read(ctx, conn)
		_ = conn.Close()

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// read consumes frames until the connection breaks or ctx is cancelled.
func (c *Client) read(ctx context.Context, conn *websocket.Conn) {
	conn.SetReadLimit(readLimit)

	// Unblock ReadMessage on shutdown without leaking the watcher once the
	// connection dies on its own.
	readDone := make(chan struct{})
	defer close(readDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-readDone:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				slog.Warn("Replay feed read failed", "error", err)
			}
			return
		}

		replay, err := decodeReplay(data)
		if err != nil {
			slog.Debug("Skipping undecodable feed frame", "error", err)
			continue
		}
		c.post(domain.ReplaySubmitted{Replay: replay})
	}
}
