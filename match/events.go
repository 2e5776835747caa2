package match

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type HitEvent struct {
	AttackerID   string
	DefenderID   string
	Damage       float64 // defender's total after the hit
	Knockback    float64
	SpeedX       float64
	SpeedY       float64
	HitstunUntil time.Duration
	At           time.Duration
}

type KOEvent struct {
	VictimID   string
	StocksLeft int
	Eliminated bool
	At         time.Duration
}

type RoundOverEvent struct {
	WinnerID   string // empty on a draw
	WinnerName string
	Draw       bool
	At         time.Duration
}

var (
	HitEvents       = events.NewEventType[HitEvent]()
	KOEvents        = events.NewEventType[KOEvent]()
	RoundOverEvents = events.NewEventType[RoundOverEvent]()
)

// OnHit calls fn for every landed hit, after the step that produced it.
func (m *Match) OnHit(fn func(HitEvent)) {
	HitEvents.Subscribe(m.world, func(_ donburi.World, e HitEvent) { fn(e) })
}

// OnKO calls fn for every stock lost.
func (m *Match) OnKO(fn func(KOEvent)) {
	KOEvents.Subscribe(m.world, func(_ donburi.World, e KOEvent) { fn(e) })
}

// OnRoundOver calls fn once when the round ends.
func (m *Match) OnRoundOver(fn func(RoundOverEvent)) {
	RoundOverEvents.Subscribe(m.world, func(_ donburi.World, e RoundOverEvent) { fn(e) })
}
