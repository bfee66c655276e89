package game

import "github.com/snakezio/snakez/rules"

// PlayerSummary is the per-player slice of a published event, ordered
// by roster slot.
type PlayerSummary struct {
	Score int  `json:"score"`
	Alive bool `json:"alive"`
}

// Event is a message on the outbound state stream. The two variants
// are Update and GameOver.
type Event interface {
	event()
}

// Update carries the grid snapshot and player summaries for one
// completed step. Exactly one Update is published per step.
type Update struct {
	Turn      int64
	Grid      *rules.Grid
	Summaries []PlayerSummary
}

// GameOver carries the final summaries. It is published exactly once,
// when all players are dead, and nothing follows it.
type GameOver struct {
	Summaries []PlayerSummary
}

func (Update) event()   {}
func (GameOver) event() {}
