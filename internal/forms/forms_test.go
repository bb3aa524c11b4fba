package forms

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avernar/battlescape/internal/render"
)

type fakeAudio struct {
	played []string
}

func (f *fakeAudio) PlaySample(name string) { f.played = append(f.played, name) }

func sprite(name string, w, h int) *render.Sprite {
	return &render.Sprite{Name: name, Image: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func newBox(audio AudioPlayer) (*CheckBox, *[]Event) {
	cb := NewCheckBox("opt", 10, 10, sprite("on", 16, 16), sprite("off", 16, 16), audio)
	var events []Event
	cb.SetEmitter(func(e Event) { events = append(events, e) })
	return cb, &events
}

func TestClickTogglesAndRaisesChange(t *testing.T) {
	audio := &fakeAudio{}
	cb, events := newBox(audio)

	cb.HandlePointer(12, 12, true)
	cb.HandlePointer(12, 12, false)

	assert.True(t, cb.Checked)
	assert.Equal(t, []Event{
		{Flag: MouseDown, Source: "opt"},
		{Flag: MouseClick, Source: "opt"},
		{Flag: CheckBoxChange, Source: "opt"},
	}, *events)
	assert.Len(t, audio.played, 1)

	cb.HandlePointer(12, 12, true)
	cb.HandlePointer(12, 12, false)
	assert.False(t, cb.Checked, "second click toggles back")
}

func TestClickOutsideIgnored(t *testing.T) {
	cb, events := newBox(nil)

	cb.HandlePointer(100, 100, true)
	cb.HandlePointer(100, 100, false)
	assert.False(t, cb.Checked)
	assert.Empty(t, *events)
}

func TestPressInsideReleaseOutsideIsNoClick(t *testing.T) {
	cb, events := newBox(nil)

	cb.HandlePointer(12, 12, true)
	cb.HandlePointer(100, 100, false)
	assert.False(t, cb.Checked)
	assert.Equal(t, []Event{{Flag: MouseDown, Source: "opt"}}, *events)
}

func TestDisabledControlInert(t *testing.T) {
	cb, events := newBox(nil)
	cb.Enabled = false

	cb.HandlePointer(12, 12, true)
	cb.HandlePointer(12, 12, false)
	assert.False(t, cb.Checked)
	assert.Empty(t, *events)
}

func TestSizeFollowsSprite(t *testing.T) {
	cb := NewCheckBox("opt", 0, 0, sprite("on", 24, 12), sprite("off", 24, 12), nil)
	assert.Equal(t, 24, cb.W)
	assert.Equal(t, 12, cb.H)
	assert.True(t, cb.Contains(23, 11))
	assert.False(t, cb.Contains(24, 12))
}
