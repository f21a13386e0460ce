package relay

import "github.com/mister-simon/Dustforce/internal/domain"

// Bus event names. Subscribers key on these strings, so they are part of the
// external contract.
const (
	eventStreamAdded    = "streamAdded"
	eventStreamDeleted  = "streamDeleted"
	eventMessageAdd     = "dustforceDiscordMessageAdd"
	eventMessageDelete  = "dustforceDiscordMessageDelete"
	eventReactionAdd    = "dustforceDiscordReactionAdd"
	eventReactionRemove = "dustforceDiscordReactionRemove"
	eventReplay         = "dustforceReplay"
)

type channelPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type authorPayload struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Bot           bool   `json:"bot"`
}

type messagePayload struct {
	ID               string        `json:"id"`
	Content          string        `json:"content"`
	CreatedTimestamp int64         `json:"createdTimestamp"`
	System           bool          `json:"system"`
	Author           authorPayload `json:"author"`
}

// messageEnvelope is the bus payload for message add/delete events.
type messageEnvelope struct {
	Channel channelPayload `json:"channel"`
	Message messagePayload `json:"message"`
}

// reactionEnvelope is the bus payload for reaction events.
type reactionEnvelope struct {
	Message messagePayload `json:"message"`
	Emoji   domain.Emoji   `json:"emoji"`
	Channel channelPayload `json:"channel"`
}

func newChannelPayload(c domain.ChatChannel) channelPayload {
	return channelPayload{ID: c.ID, Name: c.Name, Type: c.Type}
}

func newMessagePayload(m domain.ChatMessage) messagePayload {
	return messagePayload{
		ID:               m.ID,
		Content:          m.Content,
		CreatedTimestamp: m.CreatedTimestamp,
		System:           m.System,
		Author: authorPayload{
			ID:            m.Author.ID,
			Username:      m.Author.Username,
			Discriminator: m.Author.Discriminator,
			Bot:           m.Author.Bot,
		},
	}
}

func newMessageEnvelope(m domain.ChatMessage) messageEnvelope {
	return messageEnvelope{
		Channel: newChannelPayload(m.Channel),
		Message: newMessagePayload(m),
	}
}

func newReactionEnvelope(r domain.Reaction) reactionEnvelope {
	return reactionEnvelope{
		Message: newMessagePayload(r.Message),
		Emoji:   r.Emoji,
		Channel: newChannelPayload(r.Channel),
	}
}
