package domain

import "time"

// Notification is a rendered rich-display payload for a notable event.
// It is built per event, handed to a delivery channel and discarded; the
// field set mirrors the chat platform's embed schema.
type Notification struct {
	Color        int
	AuthorName   string
	AuthorURL    string
	IconURL      string
	ThumbnailURL string
	Description  []string
	FooterText   string
	Timestamp    time.Time
}
