package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed hello_world.png
var helloWorldPNG []byte

var (
	// Application and main window icon
	ResourceAppLogo fyne.Resource = fyne.NewStaticResource("hello_world.png", helloWorldPNG)
)
