package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	AccelX float64
	AccelY float64

	// OnGround is written by the collision substrate after it resolves
	// platforms. The fighter update only reads it.
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
