package systems

import (
	"math"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/shared/gamemath"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/yohamta/donburi"
)

// UpdateFighter runs one frame of a fighter's own behaviour: movement intent,
// jumps, fast-fall, attack start and the live attack's lifetime. It reads
// OnGround as left by the collision substrate and never touches position.
// It reports whether a new attack started.
func UpdateFighter(w donburi.World, e *donburi.Entry, c *config.Config, now time.Duration, dt float64) bool {
	if e.HasComponent(tags.Defeated) {
		return false
	}

	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	input := components.Input.Get(e)
	dt = gamemath.SanitizeDelta(dt)

	grounded := physics.OnGround
	if grounded {
		fighter.JumpsUsed = 0
	}

	attacked := false
	if !fighter.Stunned(now) {
		handleMovementInput(fighter, physics, input, &c.Physics, grounded, dt)
		handleJumpInput(fighter, physics, input, &c.Physics, grounded)
		handleFastFall(physics, input, &c.Physics, grounded)
		attacked = handleAttackInput(w, e, fighter, input, c, now)
	}

	if physics.SpeedY > c.Physics.MaxFallVelocity {
		physics.SpeedY = c.Physics.MaxFallVelocity
	}

	UpdateAttack(w, e, c, now)
	return attacked
}

func handleMovementInput(fighter *components.FighterData, physics *components.PhysicsData, input *components.InputData, p *config.PhysicsConfig, grounded bool, dt float64) {
	axis := input.Axis()
	if axis != 0 {
		fighter.Facing = axis
	}

	speed, accel := p.AirSpeed, p.AirAccel
	friction := p.AirFriction()
	if grounded {
		speed, accel = p.GroundSpeed, p.GroundAccel
		friction = p.GroundFriction
	}

	if axis != 0 {
		physics.SpeedX = gamemath.Approach(physics.SpeedX, axis*speed, accel*dt)
	} else {
		physics.SpeedX = gamemath.Approach(physics.SpeedX, 0, friction*dt)
	}
}

func handleJumpInput(fighter *components.FighterData, physics *components.PhysicsData, input *components.InputData, p *config.PhysicsConfig, grounded bool) {
	if !input.JumpPressed {
		return
	}
	if !grounded && fighter.JumpsUsed >= p.MaxJumps {
		return
	}
	physics.SpeedY = p.JumpVelocity
	fighter.JumpsUsed++
}

// Fast-fall holds while down is held in the air; it never slows a faster
// fall.
func handleFastFall(physics *components.PhysicsData, input *components.InputData, p *config.PhysicsConfig, grounded bool) {
	if grounded || !input.DownHeld {
		return
	}
	physics.SpeedY = math.Max(physics.SpeedY, p.FastFallVelocity)
}

func handleAttackInput(w donburi.World, e *donburi.Entry, fighter *components.FighterData, input *components.InputData, c *config.Config, now time.Duration) bool {
	if !input.AttackPressed {
		return false
	}
	if now-fighter.LastAttackAt < c.Combat.AttackCooldown {
		return false
	}
	StartAttack(w, e, c, now)
	return true
}
