package scenes

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/fonts"
	"github.com/jcorbe333/Meowlee/match"
	"github.com/jcorbe333/Meowlee/stage"
)

const (
	skyBands    = 24
	pulsePeriod = 65 * time.Millisecond
	eyeSize     = 6
)

func drawSky(screen *ebiten.Image, arena config.ArenaConfig) {
	bandH := float32(arena.Height) / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / (skyBands - 1)
		vector.FillRect(screen, 0, float32(i)*bandH, float32(arena.Width), bandH+1,
			lerpColor(config.SkyTop, config.SkyBottom, t), false)
	}
}

func drawPlatforms(screen *ebiten.Image, platforms []stage.Rect, offsetX float32) {
	for i, p := range platforms {
		c := config.PlatformColors[i%len(config.PlatformColors)]
		vector.FillRect(screen, float32(p.X)+offsetX, float32(p.Y), float32(p.W), float32(p.H), c, false)
	}
}

func drawFighter(screen *ebiten.Image, f match.FighterSnapshot, now time.Duration, offsetX float32) {
	if f.Defeated {
		return
	}

	alpha := 1.0
	if f.Invulnerable {
		alpha = invulnPulse(now)
	}

	b := f.Body
	x := float32(b.X) + offsetX
	vector.FillRect(screen, x, float32(b.Y), float32(b.W), float32(b.H), fade(f.Color, alpha), false)

	eyeX := x + float32(b.W)/2 + float32(f.Facing)*float32(b.W)/4 - eyeSize/2
	vector.FillRect(screen, eyeX, float32(b.Y)+10, eyeSize, eyeSize, fade(config.OffWhite, alpha), false)

	if hb := f.Hitbox; hb != nil {
		vector.FillRect(screen, float32(hb.X)+offsetX, float32(hb.Y), float32(hb.W), float32(hb.H), config.HitboxTint, false)
	}

	face := fonts.Small.Get()
	label := fmt.Sprintf("%.0f%%", f.Damage)
	labelX := int(x) + int(b.W)/2 - fonts.Width(face, label)/2
	text.Draw(screen, label, face, labelX, int(b.Y)-6, config.White)
}

func drawFlash(screen *ebiten.Image, arena config.ArenaConfig, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.FillRect(screen, 0, 0, float32(arena.Width), float32(arena.Height), fade(config.White, alpha), false)
}

// invulnPulse is the body alpha of a freshly respawned fighter at now.
func invulnPulse(now time.Duration) float64 {
	return 0.42 + math.Abs(math.Sin(float64(now)/float64(pulsePeriod)))*0.48
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
