package discord

import (
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/errors"
)

// fakeSession is a controllable stand-in for the live gateway connection.
type fakeSession struct {
	mu       sync.Mutex
	open     bool
	channels map[string]bool
	sendErr  error

	texts  []string
	embeds []*domain.Notification
}

func (f *fakeSession) Open() bool { return f.open }

func (f *fakeSession) HasChannel(id string) bool { return f.channels[id] }

func (f *fakeSession) SendText(_, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.texts = append(f.texts, content)
	return nil
}

func (f *fakeSession) SendEmbed(_ string, n *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.embeds = append(f.embeds, n)
	return nil
}

func (f *fakeSession) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

func awaitResult(t *testing.T, result <-chan error) error {
	t.Helper()
	select {
	case err := <-result:
		return err
	case <-time.After(time.Second):
		t.Fatal("no delivery result within a second")
		return nil
	}
}

func TestChannel_Send_ConnectionNotOpen(t *testing.T) {
	session := &fakeSession{open: false, channels: map[string]bool{"42": true}}
	channel := NewChannel(session, "42", "general")

	err := awaitResult(t, channel.Send("hello"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConnectionNotOpen))

	// The transport is never reached.
	assert.Empty(t, session.sentTexts())
}

func TestChannel_Send_ChannelNotFound(t *testing.T) {
	session := &fakeSession{open: true, channels: map[string]bool{}}
	channel := NewChannel(session, "42", "general")

	err := awaitResult(t, channel.Send("hello"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeChannelNotFound))
	assert.Empty(t, session.sentTexts())
}

func TestChannel_Send_Text(t *testing.T) {
	session := &fakeSession{open: true, channels: map[string]bool{"42": true}}
	channel := NewChannel(session, "42", "general")

	err := awaitResult(t, channel.Send("hello"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, session.sentTexts())
}

func TestChannel_Send_Notification(t *testing.T) {
	session := &fakeSession{open: true, channels: map[string]bool{"42": true}}
	channel := NewChannel(session, "42", "leaderboard-updates")

	n := &domain.Notification{AuthorName: "Downhill - Score"}
	err := awaitResult(t, channel.Send(n))
	require.NoError(t, err)
	require.Len(t, session.embeds, 1)
	assert.Same(t, n, session.embeds[0])
}

func TestChannel_Send_TransportFailure(t *testing.T) {
	session := &fakeSession{
		open:     true,
		channels: map[string]bool{"42": true},
		sendErr:  stderrors.New("50013: missing permissions"),
	}
	channel := NewChannel(session, "42", "general")

	err := awaitResult(t, channel.Send("hello"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTransport))
	assert.ErrorIs(t, err, session.sendErr)
}

func TestChannel_Send_UnsupportedPayload(t *testing.T) {
	session := &fakeSession{open: true, channels: map[string]bool{"42": true}}
	channel := NewChannel(session, "42", "general")

	err := awaitResult(t, channel.Send(12345))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInternal))
}

func TestChannel_Identity(t *testing.T) {
	channel := NewChannel(&fakeSession{}, "42", "general")
	assert.Equal(t, "42", channel.ID())
	assert.Equal(t, "general", channel.Name())
}
