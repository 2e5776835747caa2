package systems

import (
	"math"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitResult describes a landed hit as applied to the defender.
type HitResult struct {
	Attacker     *donburi.Entry
	Defender     *donburi.Entry
	Damage       float64 // defender's accumulated damage after the hit
	Knockback    float64
	SpeedX       float64
	SpeedY       float64
	HitstunUntil time.Duration
}

// Knockback is the launch speed for a fighter sitting at damage.
func Knockback(c config.CombatConfig, damage float64) float64 {
	return c.BaseKnockback + damage*c.KnockbackScale
}

// Hitstun is how long a fighter sitting at damage loses control after a hit.
func Hitstun(c config.CombatConfig, damage float64) time.Duration {
	return c.HitstunBase + time.Duration(damage*float64(c.HitstunScale))
}

// TryHit lands attacker's live attack on defender when the hitbox overlaps
// the defender's body. An attack lands at most once and never on an
// invulnerable defender.
func TryHit(attacker, defender *donburi.Entry, c *config.Config, now time.Duration) (HitResult, bool) {
	if attacker.HasComponent(tags.Defeated) || defender.HasComponent(tags.Defeated) {
		return HitResult{}, false
	}

	attackEntry := ActiveAttack(attacker)
	if attackEntry == nil {
		return HitResult{}, false
	}

	attack := components.Attack.Get(attackEntry)
	if attack.DidHit {
		return HitResult{}, false
	}

	if components.Fighter.Get(defender).Invulnerable(now) {
		return HitResult{}, false
	}

	hitbox := components.Object.Get(attackEntry).Object
	body := components.Object.Get(defender).Object
	if !overlaps(hitbox, body) {
		return HitResult{}, false
	}

	attack.DidHit = true
	return TakeHit(defender, attacker, &c.Combat, now), true
}

// TakeHit applies one hit's damage, launch and hitstun to defender. The
// launch direction is the attacker's facing, +1 when it has none.
func TakeHit(defender, attacker *donburi.Entry, c *config.CombatConfig, now time.Duration) HitResult {
	defenderData := components.Fighter.Get(defender)
	physics := components.Physics.Get(defender)

	defenderData.Damage += c.AttackDamage
	knockback := Knockback(*c, defenderData.Damage)

	direction := components.Fighter.Get(attacker).Facing
	if direction == 0 {
		direction = config.DirectionRight
	}

	physics.SpeedX = direction * knockback
	physics.SpeedY = -math.Max(c.MinKnockbackPop, knockback*c.VerticalKnockbackRatio)
	defenderData.HitstunUntil = now + Hitstun(*c, defenderData.Damage)

	return HitResult{
		Attacker:     attacker,
		Defender:     defender,
		Damage:       defenderData.Damage,
		Knockback:    knockback,
		SpeedX:       physics.SpeedX,
		SpeedY:       physics.SpeedY,
		HitstunUntil: defenderData.HitstunUntil,
	}
}

func overlaps(a, b *resolv.Object) bool {
	if a.Shape == nil || b.Shape == nil {
		return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
	}
	syncShape(a)
	syncShape(b)
	return a.Shape.Intersection(0, 0, b.Shape) != nil
}
