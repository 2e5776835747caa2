// Package stage describes the static platforms fighters stand on and where
// they spawn. It has no dependencies on ebitengine, donburi, or resolv.
package stage

// Rect is an axis-aligned platform. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where a player's body center is placed at match start and
// on every respawn.
type SpawnPoint struct {
	X, Y   float64
	Player int // 1 or 2
}

// Stage holds the platform layout for one match.
type Stage struct {
	Name      string
	Width     float64
	Height    float64
	Platforms []Rect
	Spawns    []SpawnPoint
}

// Spawn returns the spawn point for player 1 or 2.
func (s *Stage) Spawn(player int) (SpawnPoint, bool) {
	for _, sp := range s.Spawns {
		if sp.Player == player {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}
