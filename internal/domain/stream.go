package domain

// StreamInfo describes a live stream. Key identifies the stream within the
// poller's snapshot (the platform user ID). URL stays empty until the
// streamer's login has been resolved, so a snapshot entry can briefly carry
// a title without a watchable URL.
type StreamInfo struct {
	Key   string `json:"-"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title"`
}

// StreamLister provides a synchronous snapshot of currently live streams,
// keyed by stream key. The returned map is a copy owned by the caller.
type StreamLister interface {
	Streams() map[string]StreamInfo
}
