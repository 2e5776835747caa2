package systems

import (
	"time"

	"github.com/jcorbe333/Meowlee/archetypes"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// StartAttack replaces the owner's live attack, if any, with a fresh one
// positioned in front of the owner.
func StartAttack(w donburi.World, owner *donburi.Entry, c *config.Config, now time.Duration) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	fighter.LastAttackAt = now
	EndAttack(w, owner)

	attack := archetypes.Attack.Spawn(w)

	width, height := c.Body.HitboxWidth, c.Body.HitboxHeight
	obj := resolv.NewObject(0, 0, width, height, tags.ResolvAttack)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = attack
	components.Object.SetValue(attack, components.ObjectData{Object: obj})

	components.Attack.SetValue(attack, components.AttackData{
		Owner:     owner.Entity(),
		ExpiresAt: now + c.Combat.AttackActive,
	})
	fighter.ActiveAttack = attack.Entity()

	positionAttackHitbox(owner, attack, &c.Body)
	if space := spaceOf(w); space != nil {
		space.Add(obj)
	}

	return attack
}

// ActiveAttack returns the owner's live attack, or nil when it has none.
// donburi reuses entries for recycled ids, so the attack is held as an
// entity and resolved here.
func ActiveAttack(owner *donburi.Entry) *donburi.Entry {
	id := components.Fighter.Get(owner).ActiveAttack
	if !owner.World.Valid(id) {
		return nil
	}
	attack := owner.World.Entry(id)
	if components.Attack.Get(attack).Owner != owner.Entity() {
		return nil
	}
	return attack
}

// UpdateAttack expires the owner's attack once now is past its expiry and
// otherwise keeps the hitbox glued to the owner's facing side.
func UpdateAttack(w donburi.World, owner *donburi.Entry, c *config.Config, now time.Duration) {
	attack := ActiveAttack(owner)
	if attack == nil {
		components.Fighter.Get(owner).ActiveAttack = donburi.Null
		return
	}

	if now > components.Attack.Get(attack).ExpiresAt {
		EndAttack(w, owner)
		return
	}

	positionAttackHitbox(owner, attack, &c.Body)
}

// EndAttack removes the owner's live attack from the space and the world.
// It is a no-op when the owner has none.
func EndAttack(w donburi.World, owner *donburi.Entry) {
	attack := ActiveAttack(owner)
	components.Fighter.Get(owner).ActiveAttack = donburi.Null
	if attack == nil {
		return
	}

	obj := components.Object.Get(attack).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	w.Remove(attack.Entity())
}

func positionAttackHitbox(owner, attack *donburi.Entry, body *config.BodyConfig) {
	fighter := components.Fighter.Get(owner)
	ownerObj := components.Object.Get(owner)
	hitbox := components.Object.Get(attack)

	cx, cy := ownerObj.Center()
	hitbox.SetCenter(cx+fighter.Facing*body.HitboxOffsetX, cy+body.HitboxOffsetY)
	moveObject(hitbox.Object)
}
