package discord

import (
	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/errors"
)

// Channel is an addressable delivery sink for one Discord channel. Identity
// is fixed for the process lifetime; the underlying channel object is
// resolved against the live session on every send, never cached, since it
// may not exist yet or may disappear.
type Channel struct {
	session domain.Session
	id      string
	name    string
}

// NewChannel creates a delivery channel bound to the given session.
func NewChannel(session domain.Session, id, name string) *Channel {
	return &Channel{session: session, id: id, name: name}
}

func (c *Channel) ID() string   { return c.id }
func (c *Channel) Name() string { return c.name }

// Send delivers a payload to the channel and returns a deferred result.
// The payload is either a plain-text string or a *domain.Notification.
//
// Connection liveness and channel existence are checked at call time; on
// either failure the result carries a structured error and the transport is
// never reached. A single best-effort attempt is made - there is no retry
// and no idempotency key, so callers retrying blindly will post duplicate
// messages.
func (c *Channel) Send(payload any) <-chan error {
	result := make(chan error, 1)

	if !c.session.Open() {
		result <- errors.ConnectionNotOpen("connection not open").
			WithContext("channel", c.name)
		return result
	}
	if !c.session.HasChannel(c.id) {
		result <- errors.ChannelNotFound("connection open, but channel wasn't found").
			WithContext("channel", c.name)
		return result
	}

	go func() {
		var err error
		switch p := payload.(type) {
		case string:
			err = c.session.SendText(c.id, p)
		case *domain.Notification:
			err = c.session.SendEmbed(c.id, p)
		default:
			result <- errors.Internal("unsupported payload type", nil).
				WithContext("channel", c.name)
			return
		}

		if err != nil {
			result <- errors.Transport("message send failed", err).
				WithContext("channel", c.name)
			return
		}
		result <- nil
	}()

	return result
}
