package components

import "github.com/yohamta/donburi"

// InputData is one fighter's resolved controls for a single frame.
// The *Pressed fields are rising edges: true only on the frame the control
// goes from released to held.
type InputData struct {
	LeftHeld      bool
	RightHeld     bool
	JumpPressed   bool
	DownHeld      bool
	AttackPressed bool
}

// Axis returns the desired horizontal direction, -1, 0 or +1.
func (in InputData) Axis() float64 {
	axis := 0.0
	if in.RightHeld {
		axis++
	}
	if in.LeftHeld {
		axis--
	}
	return axis
}

var Input = donburi.NewComponentType[InputData]()
