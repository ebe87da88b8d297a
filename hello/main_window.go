// hello/main_window.go

// Package hello contains the window and application controllers of the
// HelloWorld application.
package hello

import (
	"sync"

	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MainWindowController fills the main window: a "Hello:" label and the
// "World" and "Universe" radio buttons sharing one integer.
type MainWindowController struct {
	value binding.Int

	label    *widget.Label
	world    *RadioButton
	universe *RadioButton

	mutex     sync.Mutex
	callbacks []func(int)
}

// NewMainWindowController creates the controller with the shared value set to initial.
func NewMainWindowController(initial int) *MainWindowController {
	c := &MainWindowController{value: binding.NewInt()}
	if err := c.value.Set(initial); err != nil {
		fyne.LogError("MainWindowController: failed to set initial value", err)
	}
	c.value.AddListener(binding.NewDataListener(c.notify))
	return c
}

// Init is called once the window exists and builds its content.
//
// Grid placement: the label sits in column 0 of row 0, "World" one cell
// to its right and "Universe" one cell below "World".
func (c *MainWindowController) Init(w fyne.Window) {
	c.unbind()

	c.label = widget.NewLabel(locales.Translate("main.label.hello"))
	c.world = NewRadioButton(common.SelectionWorld, c.value, locales.Translate("main.radio.world"))
	c.universe = NewRadioButton(common.SelectionUniverse, c.value, locales.Translate("main.radio.universe"))

	grid := container.New(layout.NewGridLayout(2),
		c.label, c.world,
		layout.NewSpacer(), c.universe,
	)
	w.SetContent(container.NewPadded(grid))
}

// Retranslate re-applies the active language to the widgets.
func (c *MainWindowController) Retranslate() {
	if c.label == nil {
		return
	}
	c.label.SetText(locales.Translate("main.label.hello"))
	c.world.SetLabel(locales.Translate("main.radio.world"))
	c.universe.SetLabel(locales.Translate("main.radio.universe"))
}

// Value returns the integer shared by the radio buttons.
func (c *MainWindowController) Value() binding.Int {
	return c.value
}

// Selection returns the current shared value.
func (c *MainWindowController) Selection() int {
	v, _ := c.value.Get()
	return v
}

// Label returns the "Hello:" label, nil before Init.
func (c *MainWindowController) Label() *widget.Label {
	return c.label
}

// RadioButtons returns the "World" and "Universe" buttons, nil before Init.
func (c *MainWindowController) RadioButtons() (*RadioButton, *RadioButton) {
	return c.world, c.universe
}

// OnSelectionChanged registers fn to run with every new shared value.
func (c *MainWindowController) OnSelectionChanged(fn func(int)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

func (c *MainWindowController) notify() {
	v, err := c.value.Get()
	if err != nil {
		return
	}

	c.mutex.Lock()
	callbacks := append([]func(int){}, c.callbacks...)
	c.mutex.Unlock()

	for _, fn := range callbacks {
		fn(v)
	}
}

func (c *MainWindowController) unbind() {
	if c.world != nil {
		c.world.Unbind()
	}
	if c.universe != nil {
		c.universe.Unbind()
	}
}
