// Package discord adapts the discordgo gateway client to the relay's ports:
// an injectable Session for delivery channels and a translator turning
// gateway callbacks into canonical events.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/mister-simon/Dustforce/internal/domain"
)

// messageCacheSize keeps recent messages in the state cache so reaction
// events can resolve their parent message without a REST round trip.
const messageCacheSize = 200

// Session wraps a discordgo session behind domain.Session so delivery
// channels and the dispatcher never touch the library directly.
type Session struct {
	gateway *discordgo.Session
}

// NewSession builds the gateway client without connecting. Connect performs
// the actual login.
func NewSession(token string) (*Session, error) {
	gateway, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	gateway.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions
	gateway.State.MaxMessageCount = messageCacheSize

	return &Session{gateway: gateway}, nil
}

// Connect registers the gateway handlers and opens the connection. Events
// arriving from the gateway are translated and handed to post.
func (s *Session) Connect(post func(domain.Event)) error {
	s.gateway.AddHandler(func(_ *discordgo.Session, _ *discordgo.Ready) {
		if err := s.gateway.UpdateGameStatus(0, "Dustforce"); err != nil {
			slog.Warn("Failed to set presence", "error", err)
		}
		slog.Info("Discord gateway ready")
	})

	s.gateway.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		post(domain.MessageCreated{Message: s.normalizeMessage(m.Message)})
	})

	s.gateway.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageDelete) {
		msg := m.Message
		if m.BeforeDelete != nil {
			msg = m.BeforeDelete
		}
		post(domain.MessageDeleted{Message: s.normalizeMessage(msg)})
	})

	s.gateway.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		msg := s.lookupMessage(r.ChannelID, r.MessageID)
		if msg == nil {
			slog.Debug("Dropping reaction for unresolvable message",
				"channel_id", r.ChannelID, "message_id", r.MessageID)
			return
		}
		normalized := s.normalizeMessage(msg)
		post(domain.ReactionAdded{Reaction: domain.Reaction{
			Message: normalized,
			Emoji:   domain.Emoji{Name: r.Emoji.Name, ID: r.Emoji.ID},
			Channel: normalized.Channel,
		}})
	})

	if err := s.gateway.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Close shuts down the gateway connection.
func (s *Session) Close() error {
	return s.gateway.Close()
}

// Open reports whether the gateway connection is live and ready.
func (s *Session) Open() bool {
	return s.gateway.DataReady
}

// HasChannel reports whether the state cache can resolve the channel.
func (s *Session) HasChannel(id string) bool {
	ch, err := s.gateway.State.Channel(id)
	return err == nil && ch != nil
}

func (s *Session) SendText(channelID, content string) error {
	_, err := s.gateway.ChannelMessageSend(channelID, content)
	return err
}

func (s *Session) SendEmbed(channelID string, n *domain.Notification) error {
	_, err := s.gateway.ChannelMessageSendEmbed(channelID, toEmbed(n))
	return err
}

func (s *Session) lookupMessage(channelID, messageID string) *discordgo.Message {
	if msg, err := s.gateway.State.Message(channelID, messageID); err == nil {
		return msg
	}
	msg, err := s.gateway.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil
	}
	return msg
}

func (s *Session) normalizeMessage(m *discordgo.Message) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:               m.ID,
		Content:          m.Content,
		CreatedTimestamp: m.Timestamp.UnixMilli(),
		System:           m.Type != discordgo.MessageTypeDefault && m.Type != discordgo.MessageTypeReply,
		Channel:          domain.ChatChannel{ID: m.ChannelID},
	}
	if m.Author != nil {
		msg.Author = domain.ChatAuthor{
			ID:            m.Author.ID,
			Username:      m.Author.Username,
			Discriminator: m.Author.Discriminator,
			Bot:           m.Author.Bot,
		}
	}
	if ch, err := s.gateway.State.Channel(m.ChannelID); err == nil {
		msg.Channel.Name = ch.Name
		msg.Channel.Type = channelTypeString(ch.Type)
	}
	return msg
}

func channelTypeString(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return "text"
	case discordgo.ChannelTypeDM:
		return "dm"
	case discordgo.ChannelTypeGuildVoice:
		return "voice"
	case discordgo.ChannelTypeGroupDM:
		return "group"
	case discordgo.ChannelTypeGuildCategory:
		return "category"
	case discordgo.ChannelTypeGuildNews:
		return "news"
	default:
		return "unknown"
	}
}
