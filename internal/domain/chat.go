package domain

// ChatChannel is the normalized channel metadata carried on chat envelopes.
// Type is the platform's channel kind ("text", "dm", ...).
type ChatChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ChatAuthor is the normalized message author.
type ChatAuthor struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Bot           bool   `json:"bot"`
}

// ChatMessage is the normalized chat message, shared by the create, delete
// and reaction envelopes.
type ChatMessage struct {
	Channel          ChatChannel `json:"-"`
	ID               string      `json:"id"`
	Content          string      `json:"content"`
	CreatedTimestamp int64       `json:"createdTimestamp"`
	System           bool        `json:"system"`
	Author           ChatAuthor  `json:"author"`
}

// Emoji identifies a reaction emoji. ID is empty for unicode emoji.
type Emoji struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Reaction is a normalized message reaction.
type Reaction struct {
	Message ChatMessage
	Emoji   Emoji
	Channel ChatChannel
}
