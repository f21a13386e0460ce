package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mister-simon/Dustforce/internal/domain"
)

func TestRankLabel(t *testing.T) {
	tests := []struct {
		rank int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{101, "101st"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
		{1000, "1000th"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RankLabel(tt.rank), "rank %d", tt.rank)
	}
}

func TestResolveTransition_TieSuffix(t *testing.T) {
	t.Run("no tie when rank equals tied-with", func(t *testing.T) {
		replay := domain.ReplayRecord{ScoreRank: 3, ScoreTiedWith: 3}
		tr := ResolveTransition(replay, nil, MetricScore)
		assert.Empty(t, tr.TieSuffix)
	})

	t.Run("suffix is the width of the tied band", func(t *testing.T) {
		tests := []struct {
			rank, tiedWith int
			want           string
		}{
			{2, 1, " (2-way tie)"},
			{5, 1, " (5-way tie)"},
			{10, 7, " (4-way tie)"},
		}
		for _, tt := range tests {
			replay := domain.ReplayRecord{ScoreRank: tt.rank, ScoreTiedWith: tt.tiedWith}
			tr := ResolveTransition(replay, nil, MetricScore)
			assert.Equal(t, tt.want, tr.TieSuffix)
		}
	})

	t.Run("time metric reads time rank fields", func(t *testing.T) {
		replay := domain.ReplayRecord{
			ScoreRank: 1, ScoreTiedWith: 1,
			TimeRank: 4, TimeTiedWith: 2,
		}
		tr := ResolveTransition(replay, nil, MetricTime)
		assert.Equal(t, " (3-way tie)", tr.TieSuffix)
	})
}

func TestResolveTransition_PreviousLines(t *testing.T) {
	current := domain.ReplayRecord{ScoreRank: 1, ScoreTiedWith: 1, Time: 65000}

	t.Run("absent previous emits nothing", func(t *testing.T) {
		tr := ResolveTransition(current, nil, MetricScore)
		assert.Empty(t, tr.PreviousRank)
		assert.Empty(t, tr.PreviousTime)
	})

	t.Run("changed rank and time emit arrow fragments", func(t *testing.T) {
		previous := domain.ReplayRecord{ScoreRank: 3, Time: 72345}
		tr := ResolveTransition(current, &previous, MetricScore)
		assert.Equal(t, " _3rd_  ->", tr.PreviousRank)
		assert.Equal(t, " _1:12.345_  ->", tr.PreviousTime)
	})

	t.Run("unchanged rank and time emit nothing", func(t *testing.T) {
		previous := domain.ReplayRecord{ScoreRank: 1, Time: 65000}
		tr := ResolveTransition(current, &previous, MetricScore)
		assert.Empty(t, tr.PreviousRank)
		assert.Empty(t, tr.PreviousTime)
	})
}

func TestResolveTransition_Pure(t *testing.T) {
	current := domain.ReplayRecord{ScoreRank: 2, ScoreTiedWith: 1, Time: 5000}
	previous := domain.ReplayRecord{ScoreRank: 5, Time: 6000}

	first := ResolveTransition(current, &previous, MetricScore)
	second := ResolveTransition(current, &previous, MetricScore)
	assert.Equal(t, first, second)
}
