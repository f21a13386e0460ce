package twitch

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nicklaw5/helix/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mister-simon/Dustforce/internal/domain"
)

// fakeHelix serves canned stream and user responses.
type fakeHelix struct {
	streams    []helix.Stream
	users      []helix.User
	streamsErr error
	usersErr   error
}

func (f *fakeHelix) GetStreams(_ *helix.StreamsParams) (*helix.StreamsResponse, error) {
	if f.streamsErr != nil {
		return nil, f.streamsErr
	}
	resp := &helix.StreamsResponse{}
	resp.StatusCode = 200
	resp.Data.Streams = f.streams
	return resp, nil
}

func (f *fakeHelix) GetUsers(_ *helix.UsersParams) (*helix.UsersResponse, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	resp := &helix.UsersResponse{}
	resp.StatusCode = 200
	resp.Data.Users = f.users
	return resp, nil
}

type eventRecorder struct {
	events []domain.Event
}

func (r *eventRecorder) post(ev domain.Event) {
	r.events = append(r.events, ev)
}

func testPoller(api *fakeHelix) (*Poller, *eventRecorder) {
	recorder := &eventRecorder{}
	p := NewPoller(api, recorder.post, clockwork.NewFakeClock(), 30*time.Second)
	return p, recorder
}

func TestPoller_NewStreamEmitsStartOnceURLResolves(t *testing.T) {
	api := &fakeHelix{
		streams: []helix.Stream{{UserID: "42", Title: "Dustforce any%"}},
		users:   []helix.User{{ID: "42", Login: "runner"}},
	}
	p, recorder := testPoller(api)

	p.poll()

	require.Len(t, recorder.events, 1)
	started, ok := recorder.events[0].(domain.StreamStarted)
	require.True(t, ok)
	assert.Equal(t, "https://www.twitch.tv/runner", started.Stream.URL)
	assert.Equal(t, "Dustforce any%", started.Stream.Title)

	snapshot := p.Streams()
	require.Contains(t, snapshot, "42")
	assert.Equal(t, "https://www.twitch.tv/runner", snapshot["42"].URL)
}

func TestPoller_URLResolutionIsTwoPhase(t *testing.T) {
	api := &fakeHelix{
		streams:  []helix.Stream{{UserID: "42", Title: "Dustforce any%"}},
		usersErr: errors.New("helix unavailable"),
	}
	p, recorder := testPoller(api)

	// First poll: stream is known but the user lookup fails, so the entry
	// sits in the snapshot without a URL and no event fires.
	p.poll()
	assert.Empty(t, recorder.events)
	snapshot := p.Streams()
	require.Contains(t, snapshot, "42")
	assert.Empty(t, snapshot["42"].URL)
	assert.Equal(t, "Dustforce any%", snapshot["42"].Title)

	// Next poll retries the lookup and emits the start event.
	api.usersErr = nil
	api.users = []helix.User{{ID: "42", Login: "runner"}}
	p.poll()

	require.Len(t, recorder.events, 1)
	started, ok := recorder.events[0].(domain.StreamStarted)
	require.True(t, ok)
	assert.Equal(t, "https://www.twitch.tv/runner", started.Stream.URL)
}

func TestPoller_StreamEnded(t *testing.T) {
	api := &fakeHelix{
		streams: []helix.Stream{{UserID: "42", Title: "Dustforce any%"}},
		users:   []helix.User{{ID: "42", Login: "runner"}},
	}
	p, recorder := testPoller(api)

	p.poll()
	require.Len(t, recorder.events, 1)

	api.streams = nil
	p.poll()

	require.Len(t, recorder.events, 2)
	ended, ok := recorder.events[1].(domain.StreamEnded)
	require.True(t, ok)
	assert.Equal(t, "https://www.twitch.tv/runner", ended.Stream.URL)
	assert.Empty(t, p.Streams())
}

func TestPoller_TitleUpdatesInPlace(t *testing.T) {
	api := &fakeHelix{
		streams: []helix.Stream{{UserID: "42", Title: "warmup"}},
		users:   []helix.User{{ID: "42", Login: "runner"}},
	}
	p, recorder := testPoller(api)

	p.poll()
	api.streams = []helix.Stream{{UserID: "42", Title: "SS attempts"}}
	p.poll()

	// No duplicate start event, but the snapshot carries the new title.
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "SS attempts", p.Streams()["42"].Title)
}

func TestPoller_PollErrorKeepsSnapshot(t *testing.T) {
	api := &fakeHelix{
		streams: []helix.Stream{{UserID: "42", Title: "Dustforce any%"}},
		users:   []helix.User{{ID: "42", Login: "runner"}},
	}
	p, recorder := testPoller(api)

	p.poll()
	require.Len(t, recorder.events, 1)

	// A failed poll must not tear down known streams.
	api.streamsErr = errors.New("timeout")
	p.poll()

	require.Len(t, recorder.events, 1)
	assert.Contains(t, p.Streams(), "42")
}

func TestPoller_SnapshotIsACopy(t *testing.T) {
	api := &fakeHelix{
		streams: []helix.Stream{{UserID: "42", Title: "Dustforce any%"}},
		users:   []helix.User{{ID: "42", Login: "runner"}},
	}
	p, _ := testPoller(api)
	p.poll()

	snapshot := p.Streams()
	snapshot["42"] = domain.StreamInfo{Title: "mutated"}

	assert.Equal(t, "Dustforce any%", p.Streams()["42"].Title)
}
