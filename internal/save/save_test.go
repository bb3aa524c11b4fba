package save

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	Turn    int    `yaml:"turn"`
	MapName string `yaml:"map_name"`
	Tick    uint64 `yaml:"tick"`
}

func (s fakeState) Ticks() uint64 { return s.Tick }

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := newTestManager(t)
	state := fakeState{Turn: 7, MapName: "ruins", Tick: 12345}

	meta, err := m.SaveNew("alpha", state)
	require.NoError(t, err)
	assert.Equal(t, "alpha", meta.Name)
	assert.Equal(t, Manual, meta.Type)

	var loaded fakeState
	got, err := m.Load(meta.File, &loaded)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
	assert.Equal(t, uint64(12345), got.GameTicks)
	assert.Equal(t, meta.File, got.File)
}

func TestSaveNewAvoidsCollision(t *testing.T) {
	m := newTestManager(t)
	first, err := m.SaveNew("twin", fakeState{Turn: 1})
	require.NoError(t, err)
	second, err := m.SaveNew("twin", fakeState{Turn: 2})
	require.NoError(t, err)

	assert.NotEqual(t, first.File, second.File)

	var s fakeState
	_, err = m.Load(first.File, &s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Turn)
}

func TestSpecialSlots(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SaveSpecial(Quick, fakeState{Turn: 3}))

	var s fakeState
	meta, err := m.LoadSpecial(Quick, &s)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Turn)
	assert.Equal(t, "Quicksave", meta.Name)
	assert.Equal(t, Quick, meta.Type)

	// Manual is not a slot on either side.
	assert.Error(t, m.SaveSpecial(Manual, fakeState{}))
	_, err = m.LoadSpecial(Manual, &s)
	assert.Error(t, err)
}

func TestOverrideRefreshesDate(t *testing.T) {
	m := newTestManager(t)
	meta, err := m.SaveNew("beta", fakeState{Turn: 1})
	require.NoError(t, err)

	old := meta.SaveDate.Add(-time.Hour)
	meta.SaveDate = old
	require.NoError(t, m.Override(meta, fakeState{Turn: 2}))

	var s fakeState
	got, err := m.Load(meta.File, &s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Turn)
	assert.True(t, got.SaveDate.After(old))
}

func TestOverwriteKeepsBackupOnUnwritableState(t *testing.T) {
	m := newTestManager(t)
	meta, err := m.SaveNew("gamma", fakeState{Turn: 1})
	require.NoError(t, err)

	// Functions cannot be YAML-encoded, so the write fails before touching
	// the file.
	err = m.Override(meta, map[string]any{"bad": func() {}})
	assert.Error(t, err)

	var s fakeState
	_, err = m.Load(meta.File, &s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Turn, "failed overwrite must keep the old save")
}

func TestListSortsNewestFirstAndToleratesJunk(t *testing.T) {
	m := newTestManager(t)

	older, err := m.SaveNew("older", fakeState{})
	require.NoError(t, err)
	// Backdate the first save so ordering is deterministic.
	older.SaveDate = time.Now().Add(-time.Hour)
	requireRewriteDate(t, m, older)

	_, err = m.SaveNew("newer", fakeState{})
	require.NoError(t, err)

	// A manifest-less file still shows up.
	junk := filepath.Join(m.Dir(), "corrupt"+Extension)
	require.NoError(t, os.WriteFile(junk, []byte(":: not yaml ::"), 0o644))
	// Non-save files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "readme.txt"), []byte("x"), 0o644))

	list := m.List()
	require.Len(t, list, 3)
	assert.Equal(t, "newer", list[0].Name)

	found := false
	for _, meta := range list {
		if meta.Name == "Unknown (missing manifest)" && meta.File == junk {
			found = true
		}
	}
	assert.True(t, found, "manifest-less save missing from list: %+v", list)
}

// requireRewriteDate stores meta with its date preserved (Override refreshes
// it, which the ordering test must bypass).
func requireRewriteDate(t *testing.T, m *Manager, meta Metadata) {
	t.Helper()
	err := m.write(meta, fakeState{})
	require.NoError(t, err)
}

func TestWriteThumbnail(t *testing.T) {
	m := newTestManager(t)
	meta, err := m.SaveNew("shot", fakeState{})
	require.NoError(t, err)

	frame := image.NewRGBA(image.Rect(0, 0, 640, 480))
	require.NoError(t, m.WriteThumbnail(meta, frame))

	info, err := os.Stat(ThumbnailPath(meta.File))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
