package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MatchData is the round state. This is a singleton component, only one
// match exists per world.
type MatchData struct {
	RoundOver bool
	Winner    *donburi.Entry // nil until decided, stays nil on a draw
	Draw      bool           // both fighters lost their last stock on the same frame
	Frame     int
	Now       time.Duration // match clock of the last step
}

var Match = donburi.NewComponentType[MatchData]()
