package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/jcorbe333/Meowlee/fonts"
	"golang.org/x/image/font"
)

// drawCentered draws s with its advance centred on cx and baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(screen, s, face, cx-fonts.Width(face, s)/2, y, clr)
}
