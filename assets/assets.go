package assets

import (
	"embed"
)

// StagesDir is the directory inside Stages holding the .tmx files.
const StagesDir = "stages"

//go:embed stages/*.tmx
var Stages embed.FS
