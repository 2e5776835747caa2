package stage

import (
	"errors"
	"fmt"

	"github.com/jcorbe333/Meowlee/config"
)

var ErrInvalidStage = errors.New("invalid stage")

// Default is the built-in four platform layout: a wide main stage, two side
// platforms and a small top platform, centred in the arena.
func Default(arena config.ArenaConfig) *Stage {
	cx := arena.Width / 2
	centered := func(x, y, w, h float64) Rect {
		return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
	}

	return &Stage{
		Name:   "battlefield",
		Width:  arena.Width,
		Height: arena.Height,
		Platforms: []Rect{
			centered(cx, 506, 560, 36),
			centered(cx-190, 380, 210, 20),
			centered(cx+190, 380, 210, 20),
			centered(cx, 300, 240, 20),
		},
		Spawns: []SpawnPoint{
			{X: cx - 120, Y: 220, Player: 1},
			{X: cx + 120, Y: 220, Player: 2},
		},
	}
}

// Validate checks the stage has something to stand on and a spawn for both
// players.
func (s *Stage) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil stage", ErrInvalidStage)
	}
	if len(s.Platforms) == 0 {
		return fmt.Errorf("%w: %q has no platforms", ErrInvalidStage, s.Name)
	}
	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: %q platform %d has size %vx%v", ErrInvalidStage, s.Name, i, p.W, p.H)
		}
	}
	for _, player := range []int{1, 2} {
		if _, ok := s.Spawn(player); !ok {
			return fmt.Errorf("%w: %q has no spawn for player %d", ErrInvalidStage, s.Name, player)
		}
	}
	return nil
}
