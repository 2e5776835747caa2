package match

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const frame = time.Second / 60

type recordingMeter struct {
	noop.Meter
	counts map[string]int64
}

type recordingCounter struct {
	noop.Int64Counter
	meter *recordingMeter
	name  string
}

func (c recordingCounter) Add(_ context.Context, incr int64, _ ...metric.AddOption) {
	c.meter.counts[c.name] += incr
}

func (m *recordingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return recordingCounter{meter: m, name: name}, nil
}

// harness drives a match on a fixed 60 Hz clock.
type harness struct {
	t     *testing.T
	m     *Match
	now   time.Duration
	meter *recordingMeter

	hits   []HitEvent
	kos    []KOEvent
	rounds []RoundOverEvent
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	h := &harness{t: t, meter: &recordingMeter{counts: map[string]int64{}}}
	m, err := New(cfg, stage.Default(cfg.Arena), WithMeter(h.meter))
	require.NoError(t, err)
	h.attach(m)
	return h
}

func (h *harness) attach(m *Match) {
	h.m = m
	m.OnHit(func(e HitEvent) { h.hits = append(h.hits, e) })
	m.OnKO(func(e KOEvent) { h.kos = append(h.kos, e) })
	m.OnRoundOver(func(e RoundOverEvent) { h.rounds = append(h.rounds, e) })
}

func (h *harness) step(inputs InputSource) {
	h.now += frame
	h.m.Step(h.now, frame.Seconds(), inputs)
}

func (h *harness) idle(frames int) {
	for i := 0; i < frames; i++ {
		h.step(nil)
	}
}

// place puts a fighter's body center at (x, y) and updates the space.
func (h *harness) place(player int, x, y float64) {
	obj := components.Object.Get(h.m.Fighter(player))
	obj.SetCenter(x, y)
	obj.Update()
	obj.Shape.SetPosition(obj.X, obj.Y)
}

func press(player int, in components.InputData) StaticInputs {
	return StaticInputs{player: in}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Round.Stocks = 0

	_, err := New(cfg, stage.Default(cfg.Arena))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_RejectsInvalidStage(t *testing.T) {
	st := stage.Default(config.Default().Arena)
	st.Spawns = st.Spawns[:1]

	_, err := New(nil, st)

	require.Error(t, err)
	assert.ErrorIs(t, err, stage.ErrInvalidStage)
}

func TestNew_PlacesFightersAtSpawns(t *testing.T) {
	h := newHarness(t, nil)

	snap := h.m.Snapshot()

	p1, p2 := snap.Fighters[0], snap.Fighters[1]
	assert.Equal(t, "Player 1", p1.Name)
	assert.Equal(t, config.Red, p1.Color)
	assert.Equal(t, 1.0, p1.Facing)
	assert.Equal(t, 360.0, p1.CenterX())
	assert.Equal(t, 3, p1.Stocks)

	assert.Equal(t, "Player 2", p2.Name)
	assert.Equal(t, -1.0, p2.Facing)
	assert.Equal(t, 600.0, p2.CenterX())

	assert.False(t, snap.RoundOver)
	assert.Len(t, snap.Platforms, 4)
}

func TestStep_FightersSettleOnStage(t *testing.T) {
	h := newHarness(t, nil)

	h.idle(90)

	// Both spawns overhang the top platform, whose top is at y=290.
	for _, f := range h.m.Snapshot().Fighters {
		assert.True(t, f.Grounded, f.ID)
		assert.InDelta(t, 290.0, f.Body.Y+f.Body.H, 1e-9, f.ID)
	}
}

func TestStep_AttackLandsOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.idle(90)
	// Right in front of P1 on the top platform, inside its hitbox.
	h.place(Player2, 400, 263)

	h.step(press(Player1, components.InputData{AttackPressed: true}))

	require.Len(t, h.hits, 1)
	hit := h.hits[0]
	assert.Equal(t, "p1", hit.AttackerID)
	assert.Equal(t, "p2", hit.DefenderID)
	assert.Equal(t, 8.0, hit.Damage)
	assert.InDelta(t, 294.4, hit.Knockback, 1e-9)
	assert.InDelta(t, 294.4, hit.SpeedX, 1e-9)
	assert.Equal(t, -180.0, hit.SpeedY)
	assert.Equal(t, int64(1), h.meter.counts["meowlee.hits"])

	snap := h.m.Snapshot()
	assert.NotNil(t, snap.Fighters[0].Hitbox)
	assert.True(t, snap.Fighters[1].Stunned)

	h.idle(5)
	assert.Len(t, h.hits, 1, "one attack lands at most once")
}

func TestStep_KOCostsAStockAndRespawns(t *testing.T) {
	h := newHarness(t, nil)
	h.idle(10)
	h.place(Player1, -300, 200)

	h.step(nil)

	require.Len(t, h.kos, 1)
	assert.Equal(t, KOEvent{VictimID: "p1", StocksLeft: 2, At: h.now}, h.kos[0])
	assert.Equal(t, int64(1), h.meter.counts["meowlee.kos"])

	p1 := h.m.Snapshot().Fighters[0]
	assert.Equal(t, 2, p1.Stocks)
	assert.Equal(t, 0.0, p1.Damage)
	assert.Equal(t, 360.0, p1.CenterX())
	assert.True(t, p1.Invulnerable)
	assert.False(t, h.m.RoundOver())

	h.idle(int(1800*time.Millisecond/frame) + 1)
	assert.False(t, h.m.Snapshot().Fighters[0].Invulnerable)
}

func TestStep_LastStockEndsRound(t *testing.T) {
	cfg := config.Default()
	cfg.Round.Stocks = 1
	h := newHarness(t, cfg)
	h.idle(10)
	h.place(Player2, 480, 900)

	h.step(nil)

	require.True(t, h.m.RoundOver())
	name, ok := h.m.Winner()
	assert.True(t, ok)
	assert.Equal(t, "Player 1", name)
	assert.False(t, h.m.Draw())

	require.Len(t, h.rounds, 1)
	assert.Equal(t, "p1", h.rounds[0].WinnerID)
	assert.True(t, h.kos[0].Eliminated)

	snap := h.m.Snapshot()
	assert.True(t, snap.Fighters[1].Defeated)
	assert.Equal(t, 0, snap.Fighters[1].Stocks)

	frameAtEnd := snap.Frame
	h.step(press(Player1, components.InputData{AttackPressed: true}))
	assert.Equal(t, frameAtEnd, h.m.Snapshot().Frame, "steps after the round are ignored")
	assert.Nil(t, h.m.Snapshot().Fighters[0].Hitbox)
	assert.Len(t, h.rounds, 1)
}

func TestStep_DoubleKOIsADraw(t *testing.T) {
	cfg := config.Default()
	cfg.Round.Stocks = 1
	h := newHarness(t, cfg)
	h.place(Player1, -300, 200)
	h.place(Player2, 1300, 200)

	h.step(nil)

	require.True(t, h.m.RoundOver())
	assert.True(t, h.m.Draw())
	_, ok := h.m.Winner()
	assert.False(t, ok)
	require.Len(t, h.rounds, 1)
	assert.True(t, h.rounds[0].Draw)
	assert.Empty(t, h.rounds[0].WinnerID)
}

func TestRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Round.Stocks = 1
	h := newHarness(t, cfg)

	_, err := h.m.Restart()
	assert.ErrorIs(t, err, ErrRoundInProgress)

	h.place(Player1, 480, 900)
	h.step(nil)
	require.True(t, h.m.RoundOver())

	fresh, err := h.m.Restart()
	require.NoError(t, err)
	require.NotSame(t, h.m, fresh)

	snap := fresh.Snapshot()
	assert.False(t, snap.RoundOver)
	assert.Equal(t, 0, snap.Frame)
	for _, f := range snap.Fighters {
		assert.Equal(t, 1, f.Stocks)
		assert.False(t, f.Defeated)
	}
	assert.Same(t, h.m.Config(), fresh.Config())
}

func TestStep_InputFuncDrivesPlayers(t *testing.T) {
	h := newHarness(t, nil)
	h.idle(90)

	right := InputFunc(func(player int) components.InputData {
		return components.InputData{RightHeld: player == Player2}
	})
	for i := 0; i < 10; i++ {
		h.step(right)
	}

	snap := h.m.Snapshot()
	assert.Equal(t, 360.0, snap.Fighters[0].CenterX())
	assert.Greater(t, snap.Fighters[1].CenterX(), 600.0)
	assert.Equal(t, 1.0, snap.Fighters[1].Facing)
}

func TestStep_DegenerateDeltasStayFinite(t *testing.T) {
	h := newHarness(t, nil)
	jump := press(Player1, components.InputData{JumpPressed: true, RightHeld: true})

	for _, dt := range []float64{math.NaN(), -3, 0, 50, math.Inf(1)} {
		h.now += frame
		h.m.Step(h.now, dt, jump)

		for _, f := range h.m.Snapshot().Fighters {
			assert.False(t, math.IsNaN(f.Body.X) || math.IsInf(f.Body.X, 0), "dt=%v", dt)
			assert.False(t, math.IsNaN(f.Body.Y) || math.IsInf(f.Body.Y, 0), "dt=%v", dt)
		}
	}
}
