package discord

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mister-simon/Dustforce/internal/domain"
)

// toEmbed converts a rendered notification into Discord's embed schema.
// Field names must round-trip exactly; the description's ordered lines are
// joined with newlines.
func toEmbed(n *domain.Notification) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: n.Color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    n.AuthorName,
			URL:     n.AuthorURL,
			IconURL: n.IconURL,
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: n.ThumbnailURL,
		},
		Description: strings.Join(n.Description, "\n"),
		Footer: &discordgo.MessageEmbedFooter{
			Text: n.FooterText,
		},
		Timestamp: n.Timestamp.Format(time.RFC3339),
	}
}
