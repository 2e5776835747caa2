package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Platform = donburi.NewTag().SetName("Platform")
	Attack   = donburi.NewTag().SetName("Attack")
	// Defeated marks a fighter with no stocks left. It stays in the world
	// for the end screen but takes no further updates.
	Defeated = donburi.NewTag().SetName("Defeated")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
	ResolvAttack  = "Attack"
)
