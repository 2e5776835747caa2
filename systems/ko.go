package systems

import (
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/yohamta/donburi"
)

// KOResult describes a stock loss.
type KOResult struct {
	Victim     *donburi.Entry
	StocksLeft int
	Eliminated bool // the victim had no stocks left and is out of the round
	RoundOver  bool
}

// IsInBlastZone reports whether the fighter's body center has left the
// blast-zone rectangle.
func IsInBlastZone(e *donburi.Entry, arena config.ArenaConfig) bool {
	cx, cy := components.Object.Get(e).Center()
	return !arena.BlastZone().Contains(cx, cy)
}

// ResolveKO costs victim a stock when it is past the blast zone, respawning
// it or ending the round. Calling it again on the same frame is a no-op
// because the victim is back at spawn or already out.
func ResolveKO(w donburi.World, victim, opponent *donburi.Entry, c *config.Config, now time.Duration) (KOResult, bool) {
	if victim.HasComponent(tags.Defeated) {
		return KOResult{}, false
	}
	if !IsInBlastZone(victim, c.Arena) {
		return KOResult{}, false
	}

	LoseStockAndRespawn(w, victim, c, now)

	lives := components.Lives.Get(victim)
	result := KOResult{Victim: victim, StocksLeft: lives.Stocks}
	if lives.Stocks > 0 {
		return result, true
	}

	result.Eliminated = true
	result.RoundOver = true
	DefeatFighter(w, victim)
	EndAttack(w, opponent)

	if matchEntry, ok := components.Match.First(w); ok {
		match := components.Match.Get(matchEntry)
		if match.RoundOver {
			// Both fighters lost their last stock on the same frame.
			match.Winner = nil
			match.Draw = true
		} else {
			match.RoundOver = true
			match.Winner = opponent
		}
	}

	return result, true
}

// LoseStockAndRespawn takes one stock and puts the fighter back on its spawn
// point, motionless, undamaged and briefly invulnerable.
func LoseStockAndRespawn(w donburi.World, e *donburi.Entry, c *config.Config, now time.Duration) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	lives := components.Lives.Get(e)

	lives.Stocks--
	fighter.Damage = 0
	fighter.HitstunUntil = 0
	EndAttack(w, e)

	obj := components.Object.Get(e)
	obj.SetCenter(fighter.SpawnX, fighter.SpawnY)
	moveObject(obj.Object)

	physics.SpeedX, physics.SpeedY = 0, 0
	physics.AccelX, physics.AccelY = 0, 0
	physics.OnGround = false

	fighter.InvulnUntil = now + c.Combat.RespawnInvuln
}

// DefeatFighter takes an out-of-stocks fighter out of play. The entry stays
// in the world for presentation.
func DefeatFighter(w donburi.World, e *donburi.Entry) {
	EndAttack(w, e)

	obj := components.Object.Get(e).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}

	if !e.HasComponent(tags.Defeated) {
		e.AddComponent(tags.Defeated)
	}
}
