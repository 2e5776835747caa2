package stage

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	PlatformsLayer = "platforms"
	SpawnsLayer    = "spawns"
)

// Load parses a TMX file into a Stage. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Platforms are rectangle objects in the "platforms"
// group; spawns are objects in the "spawns" group with an int "player"
// property.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	st := &Stage{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformsLayer:
			for _, o := range og.Objects {
				st.Platforms = append(st.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnsLayer:
			for _, o := range og.Objects {
				st.Spawns = append(st.Spawns, SpawnPoint{
					X:      o.X,
					Y:      o.Y,
					Player: o.Properties.GetInt("player"),
				})
			}
		}
	}

	sort.Slice(st.Spawns, func(i, j int) bool {
		return st.Spawns[i].Player < st.Spawns[j].Player
	})

	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return st, nil
}

// LoadAll loads every .tmx file in dir, returning stages keyed by stem name
// plus a sorted name list.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		st, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stages[st.Name] = st
		names = append(names, st.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}
