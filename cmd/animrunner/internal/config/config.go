// Package config loads the TOML script animrunner drives: a logging/
// runtime section plus a declarative tree of blocks describing the
// timeline program to build (see the animrunner package doc for the
// block vocabulary).
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RunnerConfig controls logging and the pace at which the synthetic
// frame source advances.
type RunnerConfig struct {
	Level         string  `toml:"level"`
	Format        string  `toml:"format"`
	MaxDurationMS int64   `toml:"max_duration_ms"`
	Speed         float64 `toml:"speed"`
}

// ElementConfig declares one synthetic named element the script's blocks
// can target.
type ElementConfig struct {
	Name string `toml:"name"`
	Tag  string `toml:"tag"`
	SVG  bool   `toml:"svg"`
}

// BlockConfig is one node of the instruction tree. Kind selects which
// Timeline method it compiles to; Children populates the block's nested
// sequence/parallel/group body. Properties keys are passed straight
// through to anim.To, so both numeric and string ("100px") destinations
// work.
//
// A tween/animate/set block resolves the elements it drives one of two
// ways: Target names a single declared element directly, or SelectClass/
// SelectTag pick every element carrying that class/tag out of the whole
// script's element tree (SelectRandom narrows that set back down to one,
// chosen at random, instead of animating all of them together). If both
// DurationMinMS and DurationMaxMS are set, the block's duration is drawn
// uniformly from that range each run instead of using DurationMS.
type BlockConfig struct {
	Kind          string         `toml:"kind"`
	Target        string         `toml:"target"`
	SelectClass   string         `toml:"select_class"`
	SelectTag     string         `toml:"select_tag"`
	SelectRandom  bool           `toml:"select_random"`
	DurationMS    int64          `toml:"duration_ms"`
	DurationMinMS int64          `toml:"duration_min_ms"`
	DurationMaxMS int64          `toml:"duration_max_ms"`
	DelayMS       int64          `toml:"delay_ms"`
	Properties    map[string]any `toml:"properties"`
	Children      []BlockConfig  `toml:"children"`
}

// Config is the top-level shape of an animrunner script file.
type Config struct {
	Runner   RunnerConfig    `toml:"runner"`
	Elements []ElementConfig `toml:"elements"`
	Root     BlockConfig     `toml:"root"`
}

func defaults() Config {
	return Config{
		Runner: RunnerConfig{
			Level:         "info",
			Format:        "console",
			MaxDurationMS: 600_000,
			Speed:         1,
		},
	}
}

// Load reads and decodes the TOML script at path, layering it over
// defaults() so a script may omit the [runner] table entirely.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if cfg.Root.Kind == "" {
		return nil, fmt.Errorf("config: %s: [root] block must set kind", path)
	}
	return &cfg, nil
}
