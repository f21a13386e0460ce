package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Character indexes the fixed four-entry character color/icon tables.
// The replay feed serializes it inconsistently as either a JSON number or a
// quoted digit, so it carries its own coercion. Values outside [0,3] are an
// upstream contract violation and are not handled defensively.
type Character int

func (c *Character) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("character is not numeric: %w", err)
	}
	*c = Character(n)
	return nil
}

func (c Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(c))
}

// ReplayRecord is a scored replay submission as produced by the replay feed.
// Read-only to this process; the JSON tags match the feed's wire names and
// are reused verbatim when the record is forwarded to subscribers.
type ReplayRecord struct {
	ReplayID       int64         `json:"replay_id"`
	UserID         int64         `json:"user_id"`
	Username       string        `json:"username"`
	LevelName      string        `json:"level_name"`
	LevelCleanName string        `json:"level_clean_name"`
	Character      Character     `json:"character"`
	Completion     int           `json:"completion"`
	Finesse        int           `json:"finesse"`
	Time           int64         `json:"time"` // elapsed milliseconds
	ScoreRank      int           `json:"score_rank"`
	ScoreTiedWith  int           `json:"score_tied_with"`
	ScoreRankIsPB  bool          `json:"score_rank_pb"`
	TimeRank       int           `json:"time_rank"`
	TimeTiedWith   int           `json:"time_tied_with"`
	TimeRankIsPB   bool          `json:"time_rank_pb"`
	PreviousScore  *ReplayRecord `json:"previous_score_pb,omitempty"`
	PreviousTime   *ReplayRecord `json:"previous_time_pb,omitempty"`
	Timestamp      int64         `json:"timestamp"` // unix seconds
}
