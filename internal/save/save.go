// Package save manages the on-disk save-game files: YAML archives with a
// manifest document describing the save and an opaque state document the
// engine round-trips. Overwrites go through a rename-backup dance so a failed
// write never destroys the previous save.
package save

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Extension is the save file suffix.
const Extension = ".save"

// Type classifies a save slot.
type Type int

const (
	// Manual saves are named by the player.
	Manual Type = iota
	// Quick is the single quicksave slot.
	Quick
	// Auto is the single autosave slot.
	Auto
)

// slotNames are the fixed file names of the special slots.
var slotNames = map[Type]string{
	Quick: "Quicksave",
	Auto:  "Autosave",
}

// String returns the type name for logs.
func (t Type) String() string {
	switch t {
	case Manual:
		return "manual"
	case Quick:
		return "quick"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Metadata is the save manifest.
type Metadata struct {
	Name       string    `yaml:"name"`
	Difficulty string    `yaml:"difficulty,omitempty"`
	SaveDate   time.Time `yaml:"save_date"`
	GameTicks  uint64    `yaml:"game_ticks"`
	Type       Type      `yaml:"type"`
	File       string    `yaml:"-"` // path on disk, derived from the directory scan
}

// archive is the full on-disk document.
type archive struct {
	Manifest Metadata  `yaml:"manifest"`
	State    yaml.Node `yaml:"state"`
}

// Ticker lets game states report their tick counter into the manifest.
type Ticker interface {
	Ticks() uint64
}

// Manager reads and writes saves under one directory.
type Manager struct {
	dir string
	log *log.Logger
}

// NewManager expands and creates the save directory.
func NewManager(dir string, logger *log.Logger) (*Manager, error) {
	if logger == nil {
		logger = log.Default()
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("save: expand dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return nil, fmt.Errorf("save: create dir %s: %w", expanded, err)
	}
	return &Manager{dir: expanded, log: logger}, nil
}

// Dir returns the resolved save directory.
func (m *Manager) Dir() string { return m.dir }

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+Extension)
}

// SaveNew writes a fresh manual save. Name collisions get a random suffix
// rather than overwriting an existing file.
func (m *Manager) SaveNew(name string, state any) (Metadata, error) {
	path := m.path("save_" + name)
	if exists(path) {
		found := false
		for retries := 5; retries > 0; retries-- {
			path = m.path(fmt.Sprintf("save_%s%d", name, rand.Int())) // #nosec G404 -- filename dedup only
			if !exists(path) {
				found = true
				break
			}
		}
		if !found {
			return Metadata{}, fmt.Errorf("save: no free filename for %q", name)
		}
	}
	meta := Metadata{Name: name, File: path, SaveDate: time.Now(), Type: Manual}
	return meta, m.write(meta, state)
}

// Override rewrites an existing save in place, refreshing the date.
func (m *Manager) Override(meta Metadata, state any) error {
	meta.SaveDate = time.Now()
	return m.write(meta, state)
}

// SaveSpecial writes the quick or auto slot. Manual is not a special slot.
func (m *Manager) SaveSpecial(t Type, state any) error {
	slot, ok := slotNames[t]
	if !ok {
		return fmt.Errorf("save: no special slot for type %s", t)
	}
	meta := Metadata{Name: slot, File: m.path(slot), SaveDate: time.Now(), Type: t}
	return m.write(meta, state)
}

// SpecialPath returns the on-disk path of the quick or auto slot.
func (m *Manager) SpecialPath(t Type) (string, error) {
	slot, ok := slotNames[t]
	if !ok {
		return "", fmt.Errorf("save: no special slot for type %s", t)
	}
	return m.path(slot), nil
}

// Load reads the archive at path, decoding the state document into state.
func (m *Manager) Load(path string, state any) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("save: read %s: %w", path, err)
	}
	var ar archive
	if err := yaml.Unmarshal(data, &ar); err != nil {
		return Metadata{}, fmt.Errorf("save: parse %s: %w", path, err)
	}
	if state != nil && ar.State.Kind != 0 {
		if err := ar.State.Decode(state); err != nil {
			return Metadata{}, fmt.Errorf("save: decode state of %s: %w", path, err)
		}
	}
	ar.Manifest.File = path
	return ar.Manifest, nil
}

// LoadSpecial reads the quick or auto slot.
func (m *Manager) LoadSpecial(t Type, state any) (Metadata, error) {
	slot, ok := slotNames[t]
	if !ok {
		return Metadata{}, fmt.Errorf("save: no special slot for type %s", t)
	}
	return m.Load(m.path(slot), state)
}

// List scans the save directory, newest first. Files without a readable
// manifest still show up so the player can see (and delete) them.
func (m *Manager) List() []Metadata {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.log.Error("cannot enumerate save directory", "dir", m.dir, "err", err)
		return nil
	}
	var list []Metadata
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		path := filepath.Join(m.dir, e.Name())
		meta, err := m.Load(path, nil)
		if err != nil || meta.Name == "" {
			m.log.Warn("save without readable manifest", "file", path)
			meta = Metadata{Name: "Unknown (missing manifest)", File: path, Type: Manual}
		}
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].SaveDate.After(list[j].SaveDate)
	})
	return list
}

// write marshals the archive and stores it through the backup dance.
func (m *Manager) write(meta Metadata, state any) error {
	if t, ok := state.(Ticker); ok {
		meta.GameTicks = t.Ticks()
	}
	var stateNode yaml.Node
	if err := stateNode.Encode(state); err != nil {
		return fmt.Errorf("save: encode state: %w", err)
	}
	data, err := yaml.Marshal(archive{Manifest: meta, State: stateNode})
	if err != nil {
		return fmt.Errorf("save: marshal archive: %w", err)
	}
	return m.writeWithBackup(meta.File, data)
}

// writeWithBackup renames any existing file out of the way before writing,
// restoring it if the write fails.
func (m *Manager) writeWithBackup(path string, data []byte) error {
	if !exists(path) {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("save: write %s: %w", path, err)
		}
		return nil
	}

	tempPath := filepath.Join(filepath.Dir(path), uuid.NewString()+Extension+".bak")
	if err := os.Rename(path, tempPath); err != nil {
		return fmt.Errorf("save: backup %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		// Put the old save back; a failed write must not lose it.
		os.Remove(path)
		if rerr := os.Rename(tempPath, path); rerr != nil {
			m.log.Error("could not restore save backup", "backup", tempPath, "err", rerr)
		}
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	if err := os.Remove(tempPath); err != nil {
		m.log.Warn("stale save backup left behind", "backup", tempPath, "err", err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
