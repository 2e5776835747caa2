// Package input reads the keyboard and gamepads into controls.State.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jcorbe333/Meowlee/controls"
)

type Poller struct {
	cfg        Config
	gamepadIDs []ebiten.GamepadID
}

func NewPoller(cfg Config) *Poller {
	return &Poller{cfg: cfg}
}

// Poll advances state by one frame and presses every held action. Must run
// once per ebiten Update before the match steps.
func (p *Poller) Poll(state *controls.State) {
	state.Advance()
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for i, scheme := range p.cfg.Players {
		player := i + 1

		var gamepad ebiten.GamepadID
		hasGamepad := i < len(p.gamepadIDs) && ebiten.IsStandardGamepadLayoutAvailable(p.gamepadIDs[i])
		if hasGamepad {
			gamepad = p.gamepadIDs[i]
		}

		for action, binding := range scheme {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					state.Press(player, action)
				}
			}
			if !hasGamepad {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gamepad, btn) {
					state.Press(player, action)
				}
			}
		}

		if hasGamepad {
			p.pollAnalogStick(state, player, gamepad)
		}
	}
}

func (p *Poller) pollAnalogStick(state *controls.State, player int, gamepad ebiten.GamepadID) {
	deadzone := p.cfg.AnalogDeadzone

	horizontal := ebiten.StandardGamepadAxisValue(gamepad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gamepad, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		state.Press(player, controls.MoveLeft)
	}
	if horizontal > deadzone {
		state.Press(player, controls.MoveRight)
	}
	if vertical > deadzone {
		state.Press(player, controls.FastFall)
	}
}

// RestartPressed reports whether a restart key went down this frame.
func (p *Poller) RestartPressed() bool {
	return anyJustPressed(p.cfg.Restart)
}

func (p *Poller) DebugPressed() bool {
	return anyJustPressed(p.cfg.Debug)
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
