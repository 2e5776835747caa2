package factory

import (
	"image/color"

	"github.com/jcorbe333/Meowlee/archetypes"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FighterSpec describes a competitor before it is placed in the world.
type FighterSpec struct {
	ID     string
	Name   string
	Color  color.RGBA
	Index  int
	Facing float64
	SpawnX float64 // body center
	SpawnY float64
}

func CreateFighter(w donburi.World, space *resolv.Space, c *config.Config, spec FighterSpec) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(w)

	width, height := c.Body.Width, c.Body.Height
	obj := resolv.NewObject(spec.SpawnX-width/2, spec.SpawnY-height/2, width, height, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Shape.SetPosition(obj.X, obj.Y)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	space.Add(obj)

	facing := spec.Facing
	if facing == 0 {
		facing = config.DirectionRight
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		ID:     spec.ID,
		Name:   spec.Name,
		Color:  spec.Color,
		Index:  spec.Index,
		SpawnX: spec.SpawnX,
		SpawnY: spec.SpawnY,
		Facing: facing,
		// The first attack is available immediately.
		LastAttackAt: -c.Combat.AttackCooldown,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{})
	components.Lives.SetValue(fighter, components.LivesData{
		Stocks:    c.Round.Stocks,
		MaxStocks: c.Round.Stocks,
	})
	components.Input.SetValue(fighter, components.InputData{})

	return fighter
}
