package notify

import (
	"fmt"
	"strconv"

	"github.com/mister-simon/Dustforce/internal/domain"
)

// Metric selects which leaderboard a replay notification concerns.
type Metric int

const (
	MetricScore Metric = iota
	MetricTime
)

func (m Metric) String() string {
	if m == MetricTime {
		return "Time"
	}
	return "Score"
}

// rank returns the replay's rank on this metric's leaderboard.
func (m Metric) rank(r domain.ReplayRecord) int {
	if m == MetricTime {
		return r.TimeRank
	}
	return r.ScoreRank
}

// tiedWith returns the rank the tied band starts at for this metric.
func (m Metric) tiedWith(r domain.ReplayRecord) int {
	if m == MetricTime {
		return r.TimeTiedWith
	}
	return r.ScoreTiedWith
}

// Transition holds the display fragments describing how a replay relates to
// the submitter's previous personal best. Empty fields are simply omitted
// from the rendered description.
type Transition struct {
	TieSuffix    string
	PreviousRank string
	PreviousTime string
}

// ResolveTransition computes the tie suffix and previous-PB fragments for a
// replay. The tie suffix width is rank minus the tied-with rank pointer plus
// one: the size of the rank band the replay sits in, not a count of tied
// users. Pure; same inputs always yield the same Transition.
func ResolveTransition(current domain.ReplayRecord, previous *domain.ReplayRecord, metric Metric) Transition {
	var t Transition

	rank := metric.rank(current)
	tiedWith := metric.tiedWith(current)
	if rank != tiedWith {
		t.TieSuffix = fmt.Sprintf(" (%d-way tie)", rank-tiedWith+1)
	}

	if previous == nil {
		return t
	}

	if metric.rank(*previous) != rank {
		t.PreviousRank = " _" + RankLabel(metric.rank(*previous)) + "_  ->"
	}
	if previous.Time != current.Time {
		t.PreviousTime = " _" + FormatTime(previous.Time) + "_  ->"
	}

	return t
}

// RankLabel renders a positive rank as its ordinal label ("1st", "2nd",
// "11th", "21st", ...).
func RankLabel(rank int) string {
	suffix := "th"
	if rank%100 < 11 || rank%100 > 13 {
		switch rank % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(rank) + suffix
}
