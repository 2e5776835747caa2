package components

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
)

// FighterData is the per-competitor combat state. All timestamps are on the
// match clock supplied to each step.
type FighterData struct {
	ID    string
	Name  string
	Color color.RGBA // presentation only
	Index int        // 0 for P1, 1 for P2

	SpawnX float64 // body center used for placement and every respawn
	SpawnY float64

	Facing    float64 // -1 or +1
	JumpsUsed int
	Damage    float64

	HitstunUntil time.Duration
	InvulnUntil  time.Duration
	LastAttackAt time.Duration

	ActiveAttack donburi.Entity // at most one live attack, donburi.Null when none
}

// Stunned reports whether the fighter's own input is ignored at now.
func (f *FighterData) Stunned(now time.Duration) bool {
	return now < f.HitstunUntil
}

// Invulnerable reports whether the fighter can not be hit at now.
func (f *FighterData) Invulnerable(now time.Duration) bool {
	return now < f.InvulnUntil
}

var Fighter = donburi.NewComponentType[FighterData]()
