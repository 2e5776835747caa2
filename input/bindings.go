package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jcorbe333/Meowlee/controls"
)

// Binding is the keys and standard gamepad buttons for one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Scheme maps every fighter action to its binding.
type Scheme map[controls.Action]Binding

// Config holds both players' mappings.
type Config struct {
	Players [2]Scheme
	Restart []ebiten.Key
	Debug   []ebiten.Key // toggles the collision overlay
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

var gamepadMoves = Scheme{
	controls.MoveLeft:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	controls.MoveRight: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	controls.Jump:      {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	controls.FastFall:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	controls.Attack:    {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
}

func withKeys(keys map[controls.Action][]ebiten.Key) Scheme {
	s := Scheme{}
	for action, b := range gamepadMoves {
		s[action] = Binding{Keys: keys[action], StandardGamepadButtons: b.StandardGamepadButtons}
	}
	return s
}

// Default is P1 on WASD + F, P2 on the arrows + slash. Gamepad n drives
// player n.
var Default = Config{
	Players: [2]Scheme{
		withKeys(map[controls.Action][]ebiten.Key{
			controls.MoveLeft:  {ebiten.KeyA},
			controls.MoveRight: {ebiten.KeyD},
			controls.Jump:      {ebiten.KeyW},
			controls.FastFall:  {ebiten.KeyS},
			controls.Attack:    {ebiten.KeyF},
		}),
		withKeys(map[controls.Action][]ebiten.Key{
			controls.MoveLeft:  {ebiten.KeyArrowLeft},
			controls.MoveRight: {ebiten.KeyArrowRight},
			controls.Jump:      {ebiten.KeyArrowUp},
			controls.FastFall:  {ebiten.KeyArrowDown},
			controls.Attack:    {ebiten.KeySlash},
		}),
	},
	Restart:        []ebiten.Key{ebiten.KeyR},
	Debug:          []ebiten.Key{ebiten.KeyF3},
	AnalogDeadzone: 0.25,
}
