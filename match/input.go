package match

import "github.com/jcorbe333/Meowlee/components"

// Player numbers used by InputSource and stage spawns.
const (
	Player1 = 1
	Player2 = 2
)

// InputSource supplies each player's controls for one step. Pressed fields
// must already be rising edges.
type InputSource interface {
	Input(player int) components.InputData
}

// InputFunc adapts a function to InputSource.
type InputFunc func(player int) components.InputData

func (f InputFunc) Input(player int) components.InputData {
	return f(player)
}

// StaticInputs returns the same controls every step. Missing players get no
// input.
type StaticInputs map[int]components.InputData

func (s StaticInputs) Input(player int) components.InputData {
	return s[player]
}
