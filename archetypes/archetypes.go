package archetypes

import (
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Lives,
		components.Input,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Attack,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
