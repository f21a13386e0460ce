package replays

import (
	"encoding/json"
	"fmt"

	"github.com/mister-simon/Dustforce/internal/domain"
)

// wireReplay mirrors the feed's JSON shape. The previous-PB fields arrive as
// either a nested object, an empty string, or nothing at all, so they decode
// through RawMessage before conversion.
type wireReplay struct {
	ReplayID       int64            `json:"replay_id"`
	UserID         int64            `json:"user_id"`
	Username       string           `json:"username"`
	LevelName      string           `json:"level_name"`
	LevelCleanName string           `json:"level_clean_name"`
	Character      domain.Character `json:"character"`
	Completion     int              `json:"completion"`
	Finesse        int              `json:"finesse"`
	Time           int64            `json:"time"`
	ScoreRank      int              `json:"score_rank"`
	ScoreTiedWith  int              `json:"score_tied_with"`
	ScoreRankIsPB  bool             `json:"score_rank_pb"`
	TimeRank       int              `json:"time_rank"`
	TimeTiedWith   int              `json:"time_tied_with"`
	TimeRankIsPB   bool             `json:"time_rank_pb"`
	PreviousScore  json.RawMessage  `json:"previous_score_pb"`
	PreviousTime   json.RawMessage  `json:"previous_time_pb"`
	Timestamp      int64            `json:"timestamp"`
}

func decodeReplay(data []byte) (domain.ReplayRecord, error) {
	var wire wireReplay
	if err := json.Unmarshal(data, &wire); err != nil {
		return domain.ReplayRecord{}, fmt.Errorf("decode replay frame: %w", err)
	}
	if wire.ReplayID == 0 {
		return domain.ReplayRecord{}, fmt.Errorf("frame has no replay_id")
	}
	return wire.toDomain()
}

func (w wireReplay) toDomain() (domain.ReplayRecord, error) {
	record := domain.ReplayRecord{
		ReplayID:       w.ReplayID,
		UserID:         w.UserID,
		Username:       w.Username,
		LevelName:      w.LevelName,
		LevelCleanName: w.LevelCleanName,
		Character:      w.Character,
		Completion:     w.Completion,
		Finesse:        w.Finesse,
		Time:           w.Time,
		ScoreRank:      w.ScoreRank,
		ScoreTiedWith:  w.ScoreTiedWith,
		ScoreRankIsPB:  w.ScoreRankIsPB,
		TimeRank:       w.TimeRank,
		TimeTiedWith:   w.TimeTiedWith,
		TimeRankIsPB:   w.TimeRankIsPB,
		Timestamp:      w.Timestamp,
	}

	previousScore, err := decodePrevious(w.PreviousScore)
	if err != nil {
		return domain.ReplayRecord{}, fmt.Errorf("previous_score_pb: %w", err)
	}
	record.PreviousScore = previousScore

	previousTime, err := decodePrevious(w.PreviousTime)
	if err != nil {
		return domain.ReplayRecord{}, fmt.Errorf("previous_time_pb: %w", err)
	}
	record.PreviousTime = previousTime

	return record, nil
}

// decodePrevious treats anything but a JSON object as an absent previous PB.
func decodePrevious(raw json.RawMessage) (*domain.ReplayRecord, error) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}
	var wire wireReplay
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	record, err := wire.toDomain()
	if err != nil {
		return nil, err
	}
	return &record, nil
}
