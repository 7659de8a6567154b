// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"brainrot-td/internal/component"

	"gopkg.in/yaml.v3"
)

// ErrMissingDefault is returned when a tuning file has no default record.
var ErrMissingDefault = errors.New("tuning file has no default record")

// tuningFile mirrors the on-disk layout. JSON files load too, since JSON is
// valid YAML.
type tuningFile struct {
	Default  *AllyOverride           `yaml:"default" json:"default"`
	Elements map[string]AllyOverride `yaml:"elements" json:"elements"`
	Weights  map[string]int          `yaml:"weights" json:"weights"`
}

// LoadTuning reads and resolves a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning resolves raw tuning file contents.
func ParseTuning(data []byte) (*Tuning, error) {
	var raw tuningFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	if raw.Default == nil {
		return nil, ErrMissingDefault
	}

	t := DefaultTuning()
	t.Default = raw.Default.Apply(DefaultStats())
	for name, o := range raw.Elements {
		e, ok := component.ParseElement(name)
		if !ok {
			return nil, fmt.Errorf("unknown element %q in tuning file", name)
		}
		t.Elements[e] = o.Apply(t.Default)
	}
	for name, w := range raw.Weights {
		e, ok := component.ParseElement(name)
		if !ok {
			return nil, fmt.Errorf("unknown element %q in weights", name)
		}
		t.Weights[e] = w
	}
	return t, nil
}

// LoadTuningOrDefault never fails: any load error is logged and the built-in
// table is used instead. An empty path means "no file".
func LoadTuningOrDefault(path string) *Tuning {
	if path == "" {
		return DefaultTuning()
	}
	t, err := LoadTuning(path)
	if err != nil {
		log.Printf("Tuning: %v, using built-in defaults", err)
		return DefaultTuning()
	}
	log.Printf("Loaded tuning for %d elements from %s", len(t.Elements), path)
	return t
}
