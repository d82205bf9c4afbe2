package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"mapsketch/internal/core"
	"mapsketch/internal/rooms"
)

// GridInfo records the resolution a map was generated at.
type GridInfo struct {
	Cols        int `yaml:"cols"`
	Rows        int `yaml:"rows"`
	ImageWidth  int `yaml:"image_width"`
	ImageHeight int `yaml:"image_height"`
}

// Manifest describes one generation run. It is written next to the
// exported image.
type Manifest struct {
	RunID      string                 `yaml:"run_id"`
	CreatedAt  time.Time              `yaml:"created_at"`
	Mode       string                 `yaml:"mode"`
	Source     string                 `yaml:"source,omitempty"`
	Output     string                 `yaml:"output,omitempty"`
	Seed       int64                  `yaml:"seed"`
	Grid       GridInfo               `yaml:"grid"`
	Parameters core.ParameterSnapshot `yaml:"parameters"`
	Rooms      []rooms.Room           `yaml:"rooms,omitempty"`

	// Connections are the stairs squares linking this map to other levels.
	Connections []core.Point `yaml:"connections,omitempty"`
}

// NewManifest starts a manifest for a run of the given mode with a fresh
// run id.
func NewManifest(mode string, g *core.Grid) *Manifest {
	m := &Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Mode:      mode,
	}
	if g != nil {
		m.Grid = GridInfo{Cols: g.Cols(), Rows: g.Rows(), ImageWidth: g.ImageWidth(), ImageHeight: g.ImageHeight()}
	}
	return m
}

// ManifestPath returns the manifest location for an exported image.
func ManifestPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".yaml"
}

// WriteManifest writes m as YAML.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
