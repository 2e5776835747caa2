package match

import (
	"image/color"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/jcorbe333/Meowlee/systems"
	"github.com/jcorbe333/Meowlee/tags"
)

// FighterSnapshot is a read-only view of one fighter for rendering.
type FighterSnapshot struct {
	ID    string
	Name  string
	Color color.RGBA
	Index int

	Body   stage.Rect
	Facing float64
	SpeedX float64
	SpeedY float64

	Damage    float64
	Stocks    int
	MaxStocks int

	Invulnerable bool
	Stunned      bool
	Defeated     bool
	Grounded     bool

	Hitbox *stage.Rect // nil without a live attack
}

// CenterX returns the horizontal middle of the body.
func (f FighterSnapshot) CenterX() float64 {
	return f.Body.X + f.Body.W/2
}

// CenterY returns the vertical middle of the body.
func (f FighterSnapshot) CenterY() float64 {
	return f.Body.Y + f.Body.H/2
}

// Snapshot is the whole round as of the last step.
type Snapshot struct {
	Frame    int
	Now      time.Duration
	Fighters [2]FighterSnapshot

	RoundOver  bool
	Draw       bool
	WinnerID   string
	WinnerName string

	Platforms []stage.Rect
}

func (m *Match) Snapshot() Snapshot {
	md := components.Match.Get(m.matchEntry)
	s := Snapshot{
		Frame:     md.Frame,
		Now:       md.Now,
		RoundOver: md.RoundOver,
		Draw:      md.Draw,
		Platforms: m.stage.Platforms,
	}
	if md.Winner != nil {
		winner := components.Fighter.Get(md.Winner)
		s.WinnerID, s.WinnerName = winner.ID, winner.Name
	}

	for i, e := range m.fighters {
		fighter := components.Fighter.Get(e)
		lives := components.Lives.Get(e)
		obj := components.Object.Get(e)

		physics := components.Physics.Get(e)
		fs := FighterSnapshot{
			ID:           fighter.ID,
			Name:         fighter.Name,
			Color:        fighter.Color,
			Index:        fighter.Index,
			Body:         stage.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
			Facing:       fighter.Facing,
			SpeedX:       physics.SpeedX,
			SpeedY:       physics.SpeedY,
			Damage:       fighter.Damage,
			Stocks:       lives.Stocks,
			MaxStocks:    lives.MaxStocks,
			Invulnerable: fighter.Invulnerable(md.Now),
			Stunned:      fighter.Stunned(md.Now),
			Defeated:     e.HasComponent(tags.Defeated),
			Grounded:     physics.OnGround,
		}
		if attack := systems.ActiveAttack(e); attack != nil {
			hb := components.Object.Get(attack)
			fs.Hitbox = &stage.Rect{X: hb.X, Y: hb.Y, W: hb.W, H: hb.H}
		}
		s.Fighters[i] = fs
	}

	return s
}
