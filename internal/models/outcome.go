package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is how a game ended.
type Result string

const (
	ResultSolved   Result = "solved"
	ResultPartial  Result = "partial"
	ResultFailed   Result = "failed"
	ResultTimedOut Result = "timed_out"
)

// Stats tallies what the detective did during a game.
type Stats struct {
	Turns            int `db:"turns"`
	ActionableTurns  int `db:"actionable_turns"`
	Searches         int `db:"searches"`
	SamplesCollected int `db:"samples_collected"`
	SamplesAnalyzed  int `db:"samples_analyzed"`
	UVScans          int `db:"uv_scans"`
	CameraRequests   int `db:"camera_requests"`
	DonutsSpent      int `db:"donuts_spent"`
}

// Outcome is the structured record of a finished game.
type Outcome struct {
	Result         Result
	Guess          Answer
	Answer         Answer
	SuspectCorrect bool
	WeaponCorrect  bool
	RoomCorrect    bool
	// Message is the closing narration for the result tier.
	Message string
	Stats   Stats
}

// CorrectCount returns how many fields of the accusation were right.
func (o Outcome) CorrectCount() int {
	n := 0
	for _, ok := range []bool{o.SuspectCorrect, o.WeaponCorrect, o.RoomCorrect} {
		if ok {
			n++
		}
	}
	return n
}

// LogEntry is one line of the detective's log.
type LogEntry struct {
	// Turn is the actionable turn on which the entry was written.
	Turn int    `db:"turn"`
	Text string `db:"text"`
}

// CaseFile is a finished game as archived for the session history.
type CaseFile struct {
	ID        uuid.UUID `db:"id"`
	Detective string    `db:"detective"`
	Result    Result    `db:"result"`
	Suspect   string    `db:"suspect"`
	Weapon    string    `db:"weapon"`
	Room      string    `db:"room"`
	Accused   string    `db:"accused"`
	ClosedAt  time.Time `db:"closed_at"`
	Stats
	Log []LogEntry `db:"-"`
}
