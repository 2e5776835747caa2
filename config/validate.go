package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects tunables the simulation cannot run with. All problems are
// reported at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	p := c.Physics
	for _, f := range []field{
		{"physics.gravity", p.Gravity},
		{"physics.groundFriction", p.GroundFriction},
		{"physics.airDragRatio", p.AirDragRatio},
		{"physics.fastFallVelocity", p.FastFallVelocity},
	} {
		if !finite(f.value) || f.value < 0 {
			bad("%s must be a finite non-negative number, got %v", f.name, f.value)
		}
	}
	for _, f := range []field{
		{"physics.maxFallVelocity", p.MaxFallVelocity},
		{"physics.maxSpeedX", p.MaxSpeedX},
		{"physics.groundSpeed", p.GroundSpeed},
		{"physics.airSpeed", p.AirSpeed},
		{"physics.groundAccel", p.GroundAccel},
		{"physics.airAccel", p.AirAccel},
		{"physics.maxFrameDelta", p.MaxFrameDelta},
		{"physics.substepDelta", p.SubstepDelta},
	} {
		if !finite(f.value) || f.value <= 0 {
			bad("%s must be positive, got %v", f.name, f.value)
		}
	}
	if !finite(p.JumpVelocity) || p.JumpVelocity >= 0 {
		bad("physics.jumpVelocity must be negative (upward), got %v", p.JumpVelocity)
	}
	if p.MaxJumps < 1 {
		bad("physics.maxJumps must be at least 1, got %d", p.MaxJumps)
	}
	if p.SubstepDelta > p.MaxFrameDelta {
		bad("physics.substepDelta (%v) exceeds physics.maxFrameDelta (%v)", p.SubstepDelta, p.MaxFrameDelta)
	}

	cb := c.Combat
	for _, f := range []field{
		{"combat.attackDamage", cb.AttackDamage},
		{"combat.baseKnockback", cb.BaseKnockback},
		{"combat.knockbackScale", cb.KnockbackScale},
		{"combat.minKnockbackPop", cb.MinKnockbackPop},
		{"combat.verticalKnockbackRatio", cb.VerticalKnockbackRatio},
	} {
		if !finite(f.value) || f.value < 0 {
			bad("%s must be a finite non-negative number, got %v", f.name, f.value)
		}
	}
	if cb.HitstunBase < 0 || cb.HitstunScale < 0 {
		bad("combat.hitstunBase and combat.hitstunScale must not be negative")
	}
	if cb.AttackCooldown <= 0 {
		bad("combat.attackCooldown must be positive, got %v", cb.AttackCooldown)
	}
	if cb.AttackActive <= 0 {
		bad("combat.attackActive must be positive, got %v", cb.AttackActive)
	}
	if cb.RespawnInvuln < 0 {
		bad("combat.respawnInvuln must not be negative, got %v", cb.RespawnInvuln)
	}

	b := c.Body
	if b.Width <= 0 || b.Height <= 0 || b.HitboxWidth <= 0 || b.HitboxHeight <= 0 {
		bad("body and hitbox dimensions must be positive")
	}

	if c.Round.Stocks < 1 {
		bad("round.stocks must be at least 1, got %d", c.Round.Stocks)
	}

	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 {
		bad("arena must have a positive size, got %vx%v", a.Width, a.Height)
	}
	// The blast zone has to be strictly larger than the arena on every side.
	if a.BlastMarginLeft <= 0 || a.BlastMarginRight <= 0 || a.BlastMarginTop <= 0 || a.BlastMarginBottom <= 0 {
		bad("arena blast margins must all be positive")
	}

	return errors.Join(errs...)
}

// field is one named tunable, checked in declaration order.
type field struct {
	name  string
	value float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
