package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AttackData is a live attack. The hitbox rides on the entry's Object.
type AttackData struct {
	Owner     donburi.Entity // back-reference only, the owner ends the attack before removal
	ExpiresAt time.Duration
	DidHit    bool // an attack lands at most once
}

var Attack = donburi.NewComponentType[AttackData]()
