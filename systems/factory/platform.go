package factory

import (
	"github.com/jcorbe333/Meowlee/archetypes"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/jcorbe333/Meowlee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, space *resolv.Space, rect stage.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	object := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
	object.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	object.Shape.SetPosition(rect.X, rect.Y)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	space.Add(object)

	return platform
}

// CreatePlatforms builds one static solid per stage platform.
func CreatePlatforms(w donburi.World, space *resolv.Space, st *stage.Stage) []*donburi.Entry {
	platforms := make([]*donburi.Entry, 0, len(st.Platforms))
	for _, rect := range st.Platforms {
		platforms = append(platforms, CreatePlatform(w, space, rect))
	}
	return platforms
}
