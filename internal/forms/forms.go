// Package forms is the minimal widget layer: a Control base with bounds and
// event fan-out, and the concrete widgets the engine screens need. Styling
// and layout loading are out of scope; widgets draw their injected sprites.
package forms

import (
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
)

// EventFlag tags a form interaction event.
type EventFlag uint8

const (
	// MouseDown fires when a pointer press lands inside the control.
	MouseDown EventFlag = iota
	// MouseClick fires on release inside the control after a press inside it.
	MouseClick
	// CheckBoxChange fires after a click toggles a checkbox.
	CheckBoxChange
)

// Event is one form interaction, delivered to the control's emitter.
type Event struct {
	Flag   EventFlag
	Source string // control name
}

// AudioPlayer plays interface samples. Widgets hold one by injection; the
// default is silent.
type AudioPlayer interface {
	PlaySample(name string)
}

type silentAudio struct{}

func (silentAudio) PlaySample(string) {}

// Control is the shared widget base: a named rectangle that routes events.
type Control struct {
	Name    string
	X, Y    int
	W, H    int
	Enabled bool

	emit    func(Event)
	pressed bool
}

// SetEmitter installs the event sink. A nil emitter drops events.
func (c *Control) SetEmitter(fn func(Event)) { c.emit = fn }

func (c *Control) raise(flag EventFlag) {
	if c.emit != nil {
		c.emit(Event{Flag: flag, Source: c.Name})
	}
}

// Contains reports whether the device position is inside the control.
func (c *Control) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

// CheckBox toggles on click and raises CheckBoxChange.
type CheckBox struct {
	Control
	Checked bool

	imageChecked   *render.Sprite
	imageUnchecked *render.Sprite
	audio          AudioPlayer
	clickSound     string
}

// NewCheckBox creates a checkbox at (x, y) sized to its checked sprite.
func NewCheckBox(name string, x, y int, checked, unchecked *render.Sprite, audio AudioPlayer) *CheckBox {
	if audio == nil {
		audio = silentAudio{}
	}
	w, h := checked.Size()
	return &CheckBox{
		Control:        Control{Name: name, X: x, Y: y, W: w, H: h, Enabled: true},
		imageChecked:   checked,
		imageUnchecked: unchecked,
		audio:          audio,
		clickSound:     "interface/button1",
	}
}

// HandlePointer feeds a pointer press or release. A click is a release inside
// the control following a press inside it.
func (cb *CheckBox) HandlePointer(x, y int, press bool) {
	if !cb.Enabled {
		return
	}
	inside := cb.Contains(x, y)
	if press {
		cb.pressed = inside
		if inside {
			cb.audio.PlaySample(cb.clickSound)
			cb.raise(MouseDown)
		}
		return
	}
	if cb.pressed && inside {
		cb.raise(MouseClick)
		cb.Checked = !cb.Checked
		cb.raise(CheckBoxChange)
	}
	cb.pressed = false
}

// Render draws the state sprite at the control position.
func (cb *CheckBox) Render(s render.Surface) {
	sprite := cb.imageUnchecked
	if cb.Checked {
		sprite = cb.imageChecked
	}
	if sprite == nil {
		return
	}
	s.DrawSprite(sprite, geom.Vec2{X: float64(cb.X), Y: float64(cb.Y)})
}
