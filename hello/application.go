// hello/application.go

package hello

import (
	"sync"

	"HelloWorld/assets"
	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
)

// ApplicationController owns the application level callbacks: it names the
// application, opens the main window and quits once the last tracked window
// has closed.
type ApplicationController struct {
	windowCtrl *MainWindowController
	quit       func()

	mutex       sync.Mutex
	openWindows int
	exitCode    int
	done        chan struct{}
	doneOnce    sync.Once
}

// NewApplicationController creates a controller that uses windowCtrl for the main window.
func NewApplicationController(windowCtrl *MainWindowController) *ApplicationController {
	return &ApplicationController{
		windowCtrl: windowCtrl,
		exitCode:   common.ExitOK,
		done:       make(chan struct{}),
	}
}

// ApplicationName returns the name of the application.
func (c *ApplicationController) ApplicationName() string {
	return common.AppDisplayName
}

// WindowController returns the controller of the main window.
func (c *ApplicationController) WindowController() *MainWindowController {
	return c.windowCtrl
}

// SetQuitFunc overrides how the application is stopped, fyne.App.Quit by default.
func (c *ApplicationController) SetQuitFunc(quit func()) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.quit = quit
}

// Main creates the main window with its title and icon, lets the window
// controller fill it and starts tracking it. The window is not shown yet.
func (c *ApplicationController) Main(a fyne.App) fyne.Window {
	c.mutex.Lock()
	if c.quit == nil {
		c.quit = a.Quit
	}
	c.mutex.Unlock()

	w := a.NewWindow(locales.Translate("main.app.title"))
	w.SetIcon(assets.ResourceAppLogo)
	c.windowCtrl.Init(w)
	c.TrackWindow(w)
	return w
}

// TrackWindow counts w as open until it is closed.
func (c *ApplicationController) TrackWindow(w fyne.Window) {
	c.mutex.Lock()
	c.openWindows++
	c.mutex.Unlock()

	w.SetOnClosed(c.windowClosed)
}

// OpenWindows returns the number of tracked windows still open.
func (c *ApplicationController) OpenWindows() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.openWindows
}

func (c *ApplicationController) windowClosed() {
	c.mutex.Lock()
	c.openWindows--
	last := c.openWindows == 0
	c.mutex.Unlock()

	if last {
		c.LastWindowClosed()
	}
}

// LastWindowClosed quits the application. Calling it more than once has no
// further effect.
func (c *ApplicationController) LastWindowClosed() {
	c.doneOnce.Do(func() {
		close(c.done)

		c.mutex.Lock()
		quit := c.quit
		c.mutex.Unlock()
		if quit != nil {
			quit()
		}
	})
}

// Done is closed once the last window has closed.
func (c *ApplicationController) Done() <-chan struct{} {
	return c.done
}

// SetExitCode records the status the process should exit with.
func (c *ApplicationController) SetExitCode(code int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.exitCode = code
}

// ExitCode returns the recorded exit status, 0 unless SetExitCode was called.
func (c *ApplicationController) ExitCode() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.exitCode
}
