// Package notify renders replay submissions into rich notification payloads.
//
// Rendering is deterministic: a given (replay, metric, previous) triple
// always produces byte-identical output. The level thumbnail table doubles
// as the notability gate - levels without an entry produce no notification.
package notify

import (
	"strconv"
	"time"

	"github.com/mister-simon/Dustforce/internal/domain"
	"github.com/mister-simon/Dustforce/internal/errors"
)

// descriptionIndent leads the rank and time lines so they sit under the
// username rather than the camera link.
const descriptionIndent = "       "

// Render builds the notification payload for a personal-best replay on the
// given metric. previous may be nil when the submitter had no earlier PB.
// Returns an unrenderable error when the replay's level has no thumbnail
// entry; such replays are not notable.
func Render(replay domain.ReplayRecord, metric Metric, previous *domain.ReplayRecord) (*domain.Notification, error) {
	thumb, ok := levelThumbnails[replay.LevelName]
	if !ok {
		return nil, errors.Unrenderable("no thumbnail for level").
			WithContext("level", replay.LevelName)
	}

	tr := ResolveTransition(replay, previous, metric)

	camera := "[" + cameraEmoji + "](" + replayBaseURL + strconv.FormatInt(replay.ReplayID, 10) + ")"
	username := "**[" + replay.Username + "](" + profileBaseURL + strconv.FormatInt(replay.UserID, 10) + "/)**"

	rankLine := descriptionIndent + gradeIcon(replay.Completion) + tr.PreviousRank +
		" _" + RankLabel(metric.rank(replay)) + "_" + tr.TieSuffix
	timeLine := descriptionIndent + gradeIcon(replay.Finesse) + tr.PreviousTime +
		" _" + FormatTime(replay.Time) + "_"

	return &domain.Notification{
		Color:        characterColors[replay.Character],
		AuthorName:   replay.LevelCleanName + " - " + metric.String(),
		AuthorURL:    levelBaseURL + replay.LevelName,
		IconURL:      emojiCDNURL + characterIcons[replay.Character] + ".png",
		ThumbnailURL: thumbnailURL + thumb + ".png",
		Description:  []string{camera + " " + username, rankLine, timeLine},
		FooterText:   "Time",
		Timestamp:    time.Unix(replay.Timestamp, 0).UTC(),
	}, nil
}
