package systems

import (
	"math"
	"testing"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFighter_GroundAccelerationTowardTarget(t *testing.T) {
	a := newTestArena(t)
	physics := components.Physics.Get(a.p1)
	physics.OnGround = true
	setInput(a.p1, components.InputData{LeftHeld: true})

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

	assert.InDelta(t, -2600.0/60, physics.SpeedX, 1e-9)
	assert.Equal(t, -1.0, components.Fighter.Get(a.p1).Facing)

	UpdateFighter(a.w, a.p1, a.cfg, ms(2000), 1)
	assert.Equal(t, -320.0, physics.SpeedX, "capped at ground speed")
}

func TestUpdateFighter_AirSpeedIsLowerThanGround(t *testing.T) {
	a := newTestArena(t)
	physics := components.Physics.Get(a.p1)
	setInput(a.p1, components.InputData{RightHeld: true})

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1)

	assert.Equal(t, 250.0, physics.SpeedX)
}

func TestUpdateFighter_FrictionStopsWithoutOvershoot(t *testing.T) {
	a := newTestArena(t)
	physics := components.Physics.Get(a.p1)
	physics.OnGround = true
	physics.SpeedX = 10

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)
	assert.Equal(t, 0.0, physics.SpeedX)

	physics.OnGround = false
	physics.SpeedX = -200
	UpdateFighter(a.w, a.p1, a.cfg, ms(1100), 0.1)
	assert.InDelta(t, -200+76.5, physics.SpeedX, 1e-9, "air drag is accel times drag ratio")
}

func TestUpdateFighter_OpposingDirectionsCancel(t *testing.T) {
	a := newTestArena(t)
	physics := components.Physics.Get(a.p1)
	physics.OnGround = true
	setInput(a.p1, components.InputData{LeftHeld: true, RightHeld: true})

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

	assert.Equal(t, 0.0, physics.SpeedX)
	assert.Equal(t, 1.0, components.Fighter.Get(a.p1).Facing, "facing kept with no net direction")
}

func TestUpdateFighter_JumpsResetOnLanding(t *testing.T) {
	a := newTestArena(t)
	fighter := components.Fighter.Get(a.p1)
	fighter.JumpsUsed = 2
	components.Physics.Get(a.p1).OnGround = true

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

	assert.Equal(t, 0, fighter.JumpsUsed)
}

func TestUpdateFighter_DoubleJumpThenNoMore(t *testing.T) {
	a := newTestArena(t)
	fighter := components.Fighter.Get(a.p1)
	physics := components.Physics.Get(a.p1)
	setInput(a.p1, components.InputData{JumpPressed: true})

	physics.OnGround = true
	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)
	assert.Equal(t, -620.0, physics.SpeedY)
	assert.Equal(t, 1, fighter.JumpsUsed)

	physics.OnGround = false
	physics.SpeedY = -100
	UpdateFighter(a.w, a.p1, a.cfg, ms(1100), 1.0/60)
	assert.Equal(t, -620.0, physics.SpeedY)
	assert.Equal(t, 2, fighter.JumpsUsed)

	physics.SpeedY = 50
	UpdateFighter(a.w, a.p1, a.cfg, ms(1200), 1.0/60)
	assert.Equal(t, 50.0, physics.SpeedY, "third jump refused")
	assert.Equal(t, 2, fighter.JumpsUsed)
}

func TestUpdateFighter_FastFall(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		input    components.InputData
		speedY   float64
		want     float64
	}{
		{"rising is overridden", false, components.InputData{DownHeld: true}, -620, 850},
		{"slow fall speeds up", false, components.InputData{DownHeld: true}, 100, 850},
		{"faster fall is kept", false, components.InputData{DownHeld: true}, 1000, 1000},
		{"grounded down held does nothing", true, components.InputData{DownHeld: true}, 0, 0},
		{"grounded jump with down held still jumps", true, components.InputData{DownHeld: true, JumpPressed: true}, 0, -620},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			physics := components.Physics.Get(a.p1)
			physics.OnGround = tt.grounded
			physics.SpeedY = tt.speedY
			setInput(a.p1, tt.input)

			UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

			assert.Equal(t, tt.want, physics.SpeedY)
		})
	}
}

func TestUpdateFighter_ClampsFallSpeed(t *testing.T) {
	a := newTestArena(t)
	physics := components.Physics.Get(a.p1)
	physics.SpeedY = 2000

	UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

	assert.Equal(t, 1050.0, physics.SpeedY)
}

func TestUpdateFighter_HitstunIgnoresInput(t *testing.T) {
	a := newTestArena(t)
	fighter := components.Fighter.Get(a.p1)
	physics := components.Physics.Get(a.p1)
	fighter.HitstunUntil = ms(1200)
	physics.SpeedX = 294.4
	physics.SpeedY = 3000
	setInput(a.p1, components.InputData{LeftHeld: true, JumpPressed: true, AttackPressed: true, DownHeld: true})

	started := UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60)

	assert.False(t, started)
	assert.Equal(t, 294.4, physics.SpeedX, "no friction or steering while stunned")
	assert.Equal(t, 1050.0, physics.SpeedY, "fall clamp still applies")
	assert.Equal(t, 1.0, fighter.Facing)
	assert.Nil(t, ActiveAttack(a.p1))

	started = UpdateFighter(a.w, a.p1, a.cfg, ms(1200), 1.0/60)
	assert.True(t, started, "control returns once hitstun ends")
}

func TestUpdateFighter_AttackCooldown(t *testing.T) {
	a := newTestArena(t)
	fighter := components.Fighter.Get(a.p1)
	setInput(a.p1, components.InputData{AttackPressed: true})

	require.True(t, UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60))
	assert.Equal(t, ms(1000), fighter.LastAttackAt)

	assert.False(t, UpdateFighter(a.w, a.p1, a.cfg, ms(1100), 1.0/60))
	assert.Equal(t, ms(1000), fighter.LastAttackAt)

	assert.True(t, UpdateFighter(a.w, a.p1, a.cfg, ms(1261), 1.0/60))
	assert.Equal(t, ms(1261), fighter.LastAttackAt)
}

func TestUpdateFighter_FirstAttackAvailableAtTimeZero(t *testing.T) {
	a := newTestArena(t)
	setInput(a.p1, components.InputData{AttackPressed: true})

	assert.True(t, UpdateFighter(a.w, a.p1, a.cfg, 0, 1.0/60))
}

func TestUpdateFighter_DegenerateDeltasStayFinite(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN(), 1e9, math.Inf(1)} {
		a := newTestArena(t)
		physics := components.Physics.Get(a.p1)
		physics.OnGround = true
		physics.SpeedX = 100
		setInput(a.p1, components.InputData{RightHeld: true})

		UpdateFighter(a.w, a.p1, a.cfg, ms(1000), dt)

		assert.False(t, math.IsNaN(physics.SpeedX) || math.IsInf(physics.SpeedX, 0), "dt=%v", dt)
		assert.LessOrEqual(t, physics.SpeedX, 320.0, "dt=%v", dt)
		assert.GreaterOrEqual(t, physics.SpeedX, 100.0, "dt=%v", dt)
	}
}

func TestUpdateFighter_SkipsDefeated(t *testing.T) {
	a := newTestArena(t)
	a.p1.AddComponent(tags.Defeated)
	physics := components.Physics.Get(a.p1)
	physics.SpeedY = 5000
	setInput(a.p1, components.InputData{AttackPressed: true})

	assert.False(t, UpdateFighter(a.w, a.p1, a.cfg, ms(1000), 1.0/60))
	assert.Equal(t, 5000.0, physics.SpeedY)
}
