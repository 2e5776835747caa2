package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/fonts"
	"github.com/jcorbe333/Meowlee/match"
	"github.com/jcorbe333/Meowlee/persistence"
)

const (
	hudMargin   = 20
	hudBaseline = 32
	controlHelp = "P1: A/D move, W jump, S fast-fall, F attack | P2: Arrow keys + / attack"
)

func drawHUD(screen *ebiten.Image, cfg *config.Config, snap match.Snapshot, board *persistence.Scoreboard) {
	width := int(cfg.Arena.Width)
	height := int(cfg.Arena.Height)
	hud := fonts.HUD.Get()
	small := fonts.Small.Get()

	p1, p2 := snap.Fighters[0], snap.Fighters[1]
	text.Draw(screen, fighterLine("P1", p1), hud, hudMargin, hudBaseline, config.White)
	right := fighterLine("P2", p2)
	text.Draw(screen, right, hud, width-hudMargin-fonts.Width(hud, right), hudBaseline, config.White)

	center := fmt.Sprintf("First to %d KOs", cfg.Round.Stocks)
	drawCentered(screen, center, hud, width/2, hudBaseline, config.OffWhite)

	if board != nil {
		tally := board.Tally()
		line := fmt.Sprintf("Wins  P1 %d  P2 %d  Draws %d", tally.Wins[p1.ID], tally.Wins[p2.ID], tally.Draws)
		drawCentered(screen, line, small, width/2, hudBaseline+20, config.OffWhite)
	}

	drawCentered(screen, controlHelp, small, width/2, height-12, config.OffWhite)

	if snap.RoundOver {
		drawBanner(screen, cfg, snap)
	}
}

func fighterLine(label string, f match.FighterSnapshot) string {
	return fmt.Sprintf("%s  %.0f%%  Stocks: %d", label, f.Damage, max(0, f.Stocks))
}

func drawBanner(screen *ebiten.Image, cfg *config.Config, snap match.Snapshot) {
	width := float32(cfg.Arena.Width)
	height := float32(cfg.Arena.Height)
	vector.FillRect(screen, 0, height/2-70, width, 140, config.BlackOverlay, false)

	headline := snap.WinnerName + " wins!"
	if snap.Draw {
		headline = "Draw!"
	}

	banner := fonts.Banner.Get()
	lines := []string{headline, "Press R to restart"}
	y := int(height/2) - 10
	for i, line := range lines {
		face := banner
		if i > 0 {
			face = fonts.HUD.Get()
		}
		drawCentered(screen, line, face, int(width/2), y, config.White)
		y += 40
	}
}
