package factory

import (
	"github.com/jcorbe333/Meowlee/archetypes"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceCellSize is the resolv cell edge in pixels. Fighters never move more
// than one cell per collision sub-step.
const SpaceCellSize = 16

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
