package systems

import (
	"testing"
	"time"

	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/jcorbe333/Meowlee/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const frame = time.Second / 60

type testArena struct {
	w      donburi.World
	cfg    *config.Config
	space  *resolv.Space
	match  *donburi.Entry
	p1, p2 *donburi.Entry
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	return newTestArenaWith(t, config.Default())
}

func newTestArenaWith(t *testing.T, c *config.Config) *testArena {
	t.Helper()

	w := donburi.NewWorld()
	st := stage.Default(c.Arena)
	spaceEntry := factory.CreateSpace(w, int(st.Width), int(st.Height), factory.SpaceCellSize, factory.SpaceCellSize)
	space := components.Space.Get(spaceEntry)
	factory.CreatePlatforms(w, space, st)

	a := &testArena{
		w:     w,
		cfg:   c,
		space: space,
		match: factory.CreateMatch(w),
	}
	a.p1 = factory.CreateFighter(w, space, c, factory.FighterSpec{
		ID: "p1", Name: "Player 1", Color: config.Red, Index: 0,
		Facing: config.DirectionRight, SpawnX: 360, SpawnY: 220,
	})
	a.p2 = factory.CreateFighter(w, space, c, factory.FighterSpec{
		ID: "p2", Name: "Player 2", Color: config.Blue, Index: 1,
		Facing: config.DirectionLeft, SpawnX: 600, SpawnY: 220,
	})
	return a
}

// place puts the fighter's body center at (x, y).
func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.SetCenter(x, y)
	moveObject(obj.Object)
}

func center(e *donburi.Entry) (float64, float64) {
	return components.Object.Get(e).Center()
}

func setInput(e *donburi.Entry, in components.InputData) {
	components.Input.SetValue(e, in)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
