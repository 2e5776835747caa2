package systems

import (
	"github.com/jcorbe333/Meowlee/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func spaceOf(w donburi.World) *resolv.Space {
	if spaceEntry, ok := components.Space.First(w); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

// syncShape keeps the object's collision shape on top of its bounds.
func syncShape(obj *resolv.Object) {
	if obj.Shape != nil {
		obj.Shape.SetPosition(obj.X, obj.Y)
	}
}

// moveObject commits a position change to the space and the shape.
func moveObject(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Update()
	}
	syncShape(obj)
}
