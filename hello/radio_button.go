// hello/radio_button.go

package hello

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// RadioButton is a single radio option bound to a shared integer.
// It is selected exactly when the integer equals its on-value, and
// selecting it stores the on-value into the integer. Several buttons
// sharing one binding.Int are therefore mutually exclusive.
type RadioButton struct {
	widget.RadioGroup

	onValue int
	value   binding.Int

	// mutex guards Options, Selected and listener. The shared value's
	// listener runs on the binding goroutine.
	mutex    sync.Mutex
	listener binding.DataListener
}

// NewRadioButton creates a radio button that treats onValue as its "on"
// state of the shared value.
func NewRadioButton(onValue int, value binding.Int, label string) *RadioButton {
	r := &RadioButton{
		onValue: onValue,
		value:   value,
	}
	r.Options = []string{label}
	r.Required = true
	r.OnChanged = r.selectionChanged
	r.ExtendBaseWidget(r)

	r.listener = binding.NewDataListener(r.syncFromValue)
	r.syncFromValue()
	value.AddListener(r.listener)
	return r
}

// OnValue returns the value this button stores when selected.
func (r *RadioButton) OnValue() int {
	return r.onValue
}

// Label returns the text shown next to the button.
func (r *RadioButton) Label() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.Options[0]
}

// IsSelected reports whether the button is currently on.
func (r *RadioButton) IsSelected() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.isSelected()
}

func (r *RadioButton) isSelected() bool {
	return r.Selected != "" && r.Selected == r.Options[0]
}

// SetLabel replaces the button text without changing its state.
func (r *RadioButton) SetLabel(label string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	selected := r.isSelected()
	r.Options = []string{label}
	if selected {
		r.Selected = label
	}
	r.Refresh()
}

// Select turns the button on, as a tap would.
func (r *RadioButton) Select() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.SetSelected(r.Options[0])
}

// Unbind stops following the shared value.
func (r *RadioButton) Unbind() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.listener != nil {
		r.value.RemoveListener(r.listener)
		r.listener = nil
	}
}

func (r *RadioButton) selectionChanged(selected string) {
	if selected == "" {
		return
	}
	if err := r.value.Set(r.onValue); err != nil {
		fyne.LogError("RadioButton: failed to set shared value", err)
	}
}

// syncFromValue selects the button when the shared value equals its
// on-value and clears it otherwise.
func (r *RadioButton) syncFromValue() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.listener == nil {
		return
	}
	current, err := r.value.Get()
	if err != nil {
		fyne.LogError("RadioButton: failed to read shared value", err)
		return
	}

	want := ""
	if current == r.onValue {
		want = r.Options[0]
	}
	if r.Selected != want {
		r.SetSelected(want)
	}
}
