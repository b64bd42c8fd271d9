// Package config loads the per-puzzle-variant tuning data the core's spec
// leaves as an Open Question: bucket-priority-queue bounds and IDA*
// working-stack depth caps differ for the 8-puzzle (short optimal paths)
// and the 15-puzzle (Korf's ~80-move envelope). Defaults are generous
// built-in values; an optional YAML file can override them per variant.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Bounds sizes a pqueue.Queue: FMax bounds the primary axis (f = g+h), HMax
// the secondary axis (h), both inclusive lower bound 0.
type Bounds struct {
	FMax int `yaml:"f_max"`
	HMax int `yaml:"h_max"`
}

// SearchConfig holds bounds and IDA* depth caps keyed by "NxN" (e.g. "3x3",
// "4x4").
type SearchConfig struct {
	Bounds   map[string]Bounds `yaml:"bounds"`
	MaxDepth map[string]int    `yaml:"max_depth"`
}

// Default returns the built-in configuration. For the 15-puzzle, [0,82]x[0,80]
// matches spec.md's stated envelope (Korf instances solve in at most ~80
// moves). For the 8-puzzle the envelope is far smaller: no state is more
// than 31 moves from any other and Manhattan distance is at most 22, so A*
// never pushes f above 54, even when it exhausts an unsolvable start's
// component. Tighter, cheaper-to-allocate bounds are used instead of reusing
// the 15-puzzle ones.
func Default() *SearchConfig {
	return &SearchConfig{
		Bounds: map[string]Bounds{
			"3x3": {FMax: 56, HMax: 24},
			"4x4": {FMax: 82, HMax: 80},
		},
		MaxDepth: map[string]int{
			"3x3": 40,
			"4x4": 81,
		},
	}
}

// Load reads a YAML override file and merges it over Default(). An empty
// path returns Default() unchanged.
func Load(path string) (*SearchConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse yaml")
	}
	return cfg, nil
}

func key(n int) string { return fmt.Sprintf("%dx%d", n, n) }

// BoundsFor returns the bucket-queue bounds for an n×n grid, falling back to
// a generous size if n has no explicit entry.
func (c *SearchConfig) BoundsFor(n int) Bounds {
	if b, ok := c.Bounds[key(n)]; ok {
		return b
	}
	return Bounds{FMax: 8 * n * n, HMax: 8 * n * n}
}

// MaxDepthFor returns the IDA* working-stack capacity for an n×n grid,
// falling back to a generous size if n has no explicit entry.
func (c *SearchConfig) MaxDepthFor(n int) int {
	if d, ok := c.MaxDepth[key(n)]; ok {
		return d
	}
	return 8 * n * n
}
