// Package match runs one two-fighter round: it owns the ECS world, steps the
// simulation in a fixed order and reports hits, KOs and the round result.
package match

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/jcorbe333/Meowlee/systems"
	"github.com/jcorbe333/Meowlee/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ErrRoundInProgress is returned by Restart before the round has ended.
var ErrRoundInProgress = errors.New("round still in progress")

type Match struct {
	cfg   *config.Config
	stage *stage.Stage
	opts  []Option

	log     zerolog.Logger
	metrics *matchMetrics

	world      donburi.World
	matchEntry *donburi.Entry
	fighters   [2]*donburi.Entry
}

// New validates cfg and st and builds a fresh round on st. A nil cfg uses
// config.Default.
func New(cfg *config.Config, st *stage.Stage, opts ...Option) (*Match, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	o := options{
		log:   zerolog.Nop(),
		meter: defaultMeter(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	mm, err := newMatchMetrics(o.meter)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	m := &Match{
		cfg:     cfg,
		stage:   st,
		opts:    opts,
		log:     o.log.With().Str("stage", st.Name).Logger(),
		metrics: mm,
		world:   donburi.NewWorld(),
	}

	spaceEntry := factory.CreateSpace(m.world,
		int(math.Ceil(st.Width)), int(math.Ceil(st.Height)),
		factory.SpaceCellSize, factory.SpaceCellSize)
	space := components.Space.Get(spaceEntry)
	factory.CreatePlatforms(m.world, space, st)

	for i, spec := range fighterSpecs(st) {
		m.fighters[i] = factory.CreateFighter(m.world, space, cfg, spec)
	}
	m.matchEntry = factory.CreateMatch(m.world)

	m.log.Debug().
		Int("platforms", len(st.Platforms)).
		Int("stocks", cfg.Round.Stocks).
		Msg("match created")

	return m, nil
}

func fighterSpecs(st *stage.Stage) [2]factory.FighterSpec {
	// Validate guarantees both spawns exist.
	s1, _ := st.Spawn(Player1)
	s2, _ := st.Spawn(Player2)

	return [2]factory.FighterSpec{
		{
			ID: "p1", Name: "Player 1", Color: config.Red, Index: 0,
			Facing: config.DirectionRight, SpawnX: s1.X, SpawnY: s1.Y,
		},
		{
			ID: "p2", Name: "Player 2", Color: config.Blue, Index: 1,
			Facing: config.DirectionLeft, SpawnX: s2.X, SpawnY: s2.Y,
		},
	}
}

// Step advances the round by one frame. now is the match clock and dt the
// seconds since the previous step. After the round is over Step does nothing.
func (m *Match) Step(now time.Duration, dt float64, inputs InputSource) {
	md := components.Match.Get(m.matchEntry)
	if md.RoundOver {
		return
	}
	md.Frame++
	md.Now = now

	p1, p2 := m.fighters[0], m.fighters[1]
	for i, f := range m.fighters {
		var in components.InputData
		if inputs != nil {
			in = inputs.Input(i + 1)
		}
		components.Input.SetValue(f, in)
	}

	systems.UpdateCollisions(m.world, m.cfg, dt)

	for _, f := range m.fighters {
		if systems.UpdateFighter(m.world, f, m.cfg, now, dt) {
			m.log.Trace().Str("fighter", fighterID(f)).Dur("at", now).Msg("attack started")
		}
	}

	m.tryHit(p1, p2, now)
	m.tryHit(p2, p1, now)

	m.resolveKO(p1, p2, now)
	m.resolveKO(p2, p1, now)

	if md.RoundOver {
		m.publishRoundOver(md, now)
	}

	events.ProcessAllEvents(m.world)
}

func (m *Match) tryHit(attacker, defender *donburi.Entry, now time.Duration) {
	hit, ok := systems.TryHit(attacker, defender, m.cfg, now)
	if !ok {
		return
	}

	e := HitEvent{
		AttackerID:   fighterID(attacker),
		DefenderID:   fighterID(defender),
		Damage:       hit.Damage,
		Knockback:    hit.Knockback,
		SpeedX:       hit.SpeedX,
		SpeedY:       hit.SpeedY,
		HitstunUntil: hit.HitstunUntil,
		At:           now,
	}
	m.metrics.recordHit(context.Background(), e)
	m.log.Debug().
		Str("attacker", e.AttackerID).
		Str("defender", e.DefenderID).
		Float64("damage", e.Damage).
		Float64("knockback", e.Knockback).
		Msg("hit")
	HitEvents.Publish(m.world, e)
}

func (m *Match) resolveKO(victim, opponent *donburi.Entry, now time.Duration) {
	ko, ok := systems.ResolveKO(m.world, victim, opponent, m.cfg, now)
	if !ok {
		return
	}

	e := KOEvent{
		VictimID:   fighterID(victim),
		StocksLeft: ko.StocksLeft,
		Eliminated: ko.Eliminated,
		At:         now,
	}
	m.metrics.recordKO(context.Background(), e)
	m.log.Info().
		Str("fighter", e.VictimID).
		Int("stocks", e.StocksLeft).
		Msg("KO")
	KOEvents.Publish(m.world, e)
}

func (m *Match) publishRoundOver(md *components.MatchData, now time.Duration) {
	e := RoundOverEvent{Draw: md.Draw, At: now}
	if md.Winner != nil {
		e.WinnerID = fighterID(md.Winner)
		e.WinnerName = components.Fighter.Get(md.Winner).Name
	}

	m.log.Info().
		Str("winner", e.WinnerName).
		Bool("draw", e.Draw).
		Int("frame", md.Frame).
		Msg("round over")
	RoundOverEvents.Publish(m.world, e)
}

// RoundOver reports whether the round has ended.
func (m *Match) RoundOver() bool {
	return components.Match.Get(m.matchEntry).RoundOver
}

// Winner returns the winning fighter's name once the round has a winner.
func (m *Match) Winner() (string, bool) {
	md := components.Match.Get(m.matchEntry)
	if md.Winner == nil {
		return "", false
	}
	return components.Fighter.Get(md.Winner).Name, true
}

// Draw reports whether the round ended with both fighters out on one frame.
func (m *Match) Draw() bool {
	return components.Match.Get(m.matchEntry).Draw
}

// Restart builds a fresh round with the same config, stage and options.
// Event subscriptions do not carry over.
func (m *Match) Restart() (*Match, error) {
	if !m.RoundOver() {
		return nil, ErrRoundInProgress
	}
	m.log.Info().Msg("restarting round")
	return New(m.cfg, m.stage, m.opts...)
}

// Fighter returns the entry for player 1 or 2.
func (m *Match) Fighter(player int) *donburi.Entry {
	if player < Player1 || player > Player2 {
		return nil
	}
	return m.fighters[player-1]
}

func (m *Match) World() donburi.World {
	return m.world
}

func (m *Match) Config() *config.Config {
	return m.cfg
}

func (m *Match) Stage() *stage.Stage {
	return m.stage
}

func fighterID(e *donburi.Entry) string {
	return components.Fighter.Get(e).ID
}
