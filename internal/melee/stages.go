// Package melee resolves Melee-specific display values: stage names and
// frame-based durations.
package melee

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var stagesYAML []byte

// StageCatalog maps stage ids to display names.
type StageCatalog struct {
	names map[int]string
}

type stageFile struct {
	Stages map[int]string `yaml:"stages"`
}

// ParseStageCatalog reads a catalog from YAML of the form `stages: {id: name}`.
func ParseStageCatalog(data []byte) (*StageCatalog, error) {
	var f stageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stage catalog: %w", err)
	}
	if f.Stages == nil {
		f.Stages = map[int]string{}
	}
	return &StageCatalog{names: f.Stages}, nil
}

// DefaultStages returns the built-in Melee stage catalog.
func DefaultStages() *StageCatalog {
	catalog, err := ParseStageCatalog(stagesYAML)
	if err != nil {
		panic(err) // embedded file is validated by tests
	}
	return catalog
}

// StageName returns the display name for a stage id.
func (c *StageCatalog) StageName(stageID int) (string, bool) {
	name, ok := c.names[stageID]
	return name, ok
}

// Len returns the number of stages in the catalog.
func (c *StageCatalog) Len() int {
	return len(c.names)
}
