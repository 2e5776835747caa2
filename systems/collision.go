package systems

import (
	"math"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/shared/gamemath"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// contactEpsilon absorbs float error when deciding which side of a solid an
// object is on.
const contactEpsilon = 0.01

// UpdateCollisions integrates every fighter's velocity over dt seconds and
// resolves it against the stage solids and the other fighter. It is the only
// place positions and OnGround change during a frame. dt is clamped to
// MaxFrameDelta and split into sub-steps no longer than SubstepDelta.
func UpdateCollisions(w donburi.World, c *config.Config, dt float64) {
	p := &c.Physics
	dt = math.Min(gamemath.SanitizeDelta(dt), p.MaxFrameDelta)

	steps := int(math.Ceil(dt / p.SubstepDelta))
	if steps < 1 {
		steps = 1
	}
	step := dt / float64(steps)

	for i := 0; i < steps; i++ {
		tags.Fighter.Each(w, func(e *donburi.Entry) {
			if e.HasComponent(tags.Defeated) {
				return
			}
			physics := components.Physics.Get(e)
			obj := components.Object.Get(e).Object

			integrateVelocity(physics, p, step)
			resolveHorizontalCollision(physics, obj, physics.SpeedX*step)
			resolveVerticalCollision(physics, obj, physics.SpeedY*step)
			moveObject(obj)
		})
	}
}

func integrateVelocity(physics *components.PhysicsData, p *config.PhysicsConfig, step float64) {
	physics.SpeedX += physics.AccelX * step
	physics.SpeedY += (p.Gravity + physics.AccelY) * step

	physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, p.MaxSpeedX)
	physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, p.MaxFallVelocity)
}

// resolveHorizontalCollision moves the object by dx, stopping flush against
// any solid in the way. Fighters block each other without losing speed.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx+gamemath.Sign(dx), 0, tags.ResolvSolid, tags.ResolvFighter)
	if check == nil {
		object.X += dx
		return
	}

	if limit, blocked := horizontalLimit(object, check.ObjectsByTags(tags.ResolvSolid), dx); blocked {
		dx = limit
		physics.SpeedX = 0
	}

	if limit, blocked := horizontalLimit(object, check.ObjectsByTags(tags.ResolvFighter), dx); blocked {
		dx = limit
	}

	object.X += dx
}

// horizontalLimit returns how far the object may travel toward dx before
// touching one of others. Only objects sharing a vertical span and lying
// ahead of the object count.
func horizontalLimit(object *resolv.Object, others []*resolv.Object, dx float64) (float64, bool) {
	limit := dx
	blocked := false

	for _, other := range others {
		if object.Y+object.H <= other.Y || object.Y >= other.Y+other.H {
			continue
		}
		if dx > 0 {
			gap := other.X - (object.X + object.W)
			if gap < -contactEpsilon || gap >= limit {
				continue
			}
			limit, blocked = math.Max(gap, 0), true
		} else {
			gap := object.X - (other.X + other.W)
			if gap < -contactEpsilon || gap >= -limit {
				continue
			}
			limit, blocked = -math.Max(gap, 0), true
		}
	}

	return limit, blocked
}

// resolveVerticalCollision moves the object by dy, landing it on the nearest
// solid top below or stopping it under the nearest solid bottom above.
// Moving down also probes one pixel past dy so a resting fighter stays
// grounded.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	// The broad phase looks one pixel further so cell edges never hide a
	// solid the narrow phase would accept.
	check := object.Check(0, checkDistance+gamemath.Sign(dy), tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	if dy >= 0 {
		if top, ok := nearestTopBelow(object, check.ObjectsByTags(tags.ResolvSolid), checkDistance); ok {
			object.Y = top - object.H
			physics.SpeedY = 0
			physics.OnGround = true
			return
		}
	} else if bottom, ok := nearestBottomAbove(object, check.ObjectsByTags(tags.ResolvSolid), dy); ok {
		object.Y = bottom
		physics.SpeedY = 0
		return
	}

	object.Y += dy
}

func nearestTopBelow(object *resolv.Object, solids []*resolv.Object, reach float64) (float64, bool) {
	feet := object.Y + object.H
	best, found := math.Inf(1), false
	for _, solid := range solids {
		if !overlapsX(object, solid) {
			continue
		}
		if solid.Y < feet-contactEpsilon || solid.Y > feet+reach {
			continue
		}
		if solid.Y < best {
			best, found = solid.Y, true
		}
	}
	return best, found
}

func nearestBottomAbove(object *resolv.Object, solids []*resolv.Object, dy float64) (float64, bool) {
	best, found := math.Inf(-1), false
	for _, solid := range solids {
		if !overlapsX(object, solid) {
			continue
		}
		bottom := solid.Y + solid.H
		if bottom > object.Y+contactEpsilon || bottom < object.Y+dy {
			continue
		}
		if bottom > best {
			best, found = bottom, true
		}
	}
	return best, found
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}
