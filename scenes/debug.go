package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/yohamta/donburi"
)

// drawDebug outlines every object in the collision space.
func drawDebug(w donburi.World, screen *ebiten.Image, offsetX float32) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvFighter) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvAttack) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		x, y := float32(obj.X)+offsetX, float32(obj.Y)
		vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                   // Top
		vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                   // Left
		vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), c, false) // Right
	}
}
