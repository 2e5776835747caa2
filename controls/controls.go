// Package controls turns per-frame held actions into fighter inputs with
// rising-edge detection. It knows nothing about keyboards or gamepads.
package controls

import "github.com/jcorbe333/Meowlee/components"

// Action is a logical fighter control.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Jump
	FastFall
	Attack
	ActionCount // Must be last - used for array sizing
)

const players = 2

// State holds the current and previous frame of held actions for both
// players. Call Advance once per frame before pressing this frame's actions.
type State struct {
	current  [players][ActionCount]bool
	previous [players][ActionCount]bool
}

// Advance moves the current frame into history and clears it.
func (s *State) Advance() {
	s.previous = s.current
	s.current = [players][ActionCount]bool{}
}

// Press marks action as held by player (1 or 2) this frame.
func (s *State) Press(player int, action Action) {
	if !valid(player, action) {
		return
	}
	s.current[player-1][action] = true
}

func (s *State) Held(player int, action Action) bool {
	if !valid(player, action) {
		return false
	}
	return s.current[player-1][action]
}

// JustPressed reports whether action went from released to held this frame.
func (s *State) JustPressed(player int, action Action) bool {
	if !valid(player, action) {
		return false
	}
	return s.current[player-1][action] && !s.previous[player-1][action]
}

// Input returns player's controls for the frame. Jump and attack are edges,
// movement and fast-fall are levels.
func (s *State) Input(player int) components.InputData {
	return components.InputData{
		LeftHeld:      s.Held(player, MoveLeft),
		RightHeld:     s.Held(player, MoveRight),
		JumpPressed:   s.JustPressed(player, Jump),
		DownHeld:      s.Held(player, FastFall),
		AttackPressed: s.JustPressed(player, Attack),
	}
}

func valid(player int, action Action) bool {
	return player >= 1 && player <= players && action >= 0 && action < ActionCount
}
