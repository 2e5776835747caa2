package factory

import (
	"github.com/jcorbe333/Meowlee/archetypes"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/yohamta/donburi"
)

func CreateMatch(w donburi.World) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{})
	return match
}
