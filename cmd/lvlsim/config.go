// SPDX-License-Identifier: MIT
// Package: main (lvlsim)
//
// Purpose:
//   - YAML configuration for the batch analysis runner: where the model
//     embedding, reference RDM, condition subset and optional LSA grid live,
//     plus randomization-test and report settings.
//
// Conventions:
//   - Load unmarshals over Default, so absent keys keep their defaults.
//   - Paths are used as given (relative to the working directory).

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsim/norms"
	"github.com/katalvlaran/lvlsim/simmat"
)

// Config is the root configuration structure.
type Config struct {
	Embedding     EmbeddingConfig     `yaml:"embedding"`
	Reference     ReferenceConfig     `yaml:"reference"`
	Subset        SubsetConfig        `yaml:"subset"`
	LSA           LSAConfig           `yaml:"lsa"`
	Randomization RandomizationConfig `yaml:"randomization"`
	Output        OutputConfig        `yaml:"output"`
}

// EmbeddingConfig locates the model embedding and selects its variants.
type EmbeddingConfig struct {
	// Path is the embedding table. With WordsPath empty it is a row-per-word
	// vector table (word column first); with WordsPath set it is a headerless
	// numeric grid whose row labels come from that file.
	Path string `yaml:"path"`

	// WordsPath is an optional line-per-word label file for headerless grids.
	WordsPath string `yaml:"words_path"`

	// Delimiter is the field delimiter for Path, as a one-rune string.
	// Empty means ","; use " " for space-delimited exports.
	Delimiter string `yaml:"delimiter"`

	// HasHeader marks the first record of a vector table as a header row.
	// Ignored when WordsPath is set: grids are headerless.
	HasHeader bool `yaml:"has_header"`

	// Dims lists the leading-dimension variants to analyse, one model per
	// entry, each built from that many leading columns. 0 means the full
	// width; empty means one full-width model.
	Dims []int `yaml:"dims"`
}

// ReferenceConfig locates the reference RDM, a labelled square grid of
// dissimilarities (header row plus matching index column).
type ReferenceConfig struct {
	Path string `yaml:"path"`
}

// SubsetConfig locates an optional line-per-word condition subset. Empty
// means every reference label.
type SubsetConfig struct {
	Path string `yaml:"path"`
}

// LSAConfig locates an optional labelled similarity grid to score as an
// extra model. Empty skips it.
type LSAConfig struct {
	Path string `yaml:"path"`
}

// RandomizationConfig sets the permutation test parameters.
type RandomizationConfig struct {
	// Perms is the number of permutation draws; p-value resolution is
	// 1/Perms.
	Perms int `yaml:"perms"`

	// Seed selects the deterministic RNG stream; 0 uses the stable default.
	Seed int64 `yaml:"seed"`
}

// OutputConfig sets where and how the report is written.
type OutputConfig struct {
	// Path is the report CSV destination.
	Path string `yaml:"path"`

	// Precision is the number of decimal places for r and p.
	Precision int `yaml:"precision"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Delimiter: ",",
			HasHeader: true,
		},
		Randomization: RandomizationConfig{
			Perms: simmat.DefaultNPerms,
			Seed:  0,
		},
		Output: OutputConfig{
			Path:      "results.csv",
			Precision: 6,
		},
	}
}

// Load reads and validates a configuration file. Absent keys keep the
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields the run cannot proceed without.
func (c *Config) Validate() error {
	if c.Embedding.Path == "" {
		return fmt.Errorf("embedding.path is required")
	}
	if utf8.RuneCountInString(c.Embedding.Delimiter) > 1 {
		return fmt.Errorf("embedding.delimiter %q: want a single rune", c.Embedding.Delimiter)
	}
	for _, d := range c.Embedding.Dims {
		if d < 0 {
			return fmt.Errorf("embedding.dims entry %d: want >= 0", d)
		}
	}
	if c.Reference.Path == "" {
		return fmt.Errorf("reference.path is required")
	}
	if c.Randomization.Perms < 1 {
		return fmt.Errorf("randomization.perms %d: want >= 1", c.Randomization.Perms)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision %d: want 0..17", c.Output.Precision)
	}

	return nil
}

// tableOptions translates the embedding fields into norms reader options.
func (e EmbeddingConfig) tableOptions() norms.TableOptions {
	o := norms.TableOptions{Comma: ',', HasHeader: e.HasHeader}
	if e.Delimiter != "" {
		o.Comma, _ = utf8.DecodeRuneInString(e.Delimiter)
	}
	if e.WordsPath != "" {
		o.HasHeader = false
	}

	return o
}

// variants returns the dimension variants to analyse, defaulting to one
// full-width model.
func (e EmbeddingConfig) variants() []int {
	if len(e.Dims) == 0 {
		return []int{0}
	}

	return e.Dims
}

// options assembles the randomization-test options.
func (r RandomizationConfig) options() simmat.RandomizationOptions {
	return simmat.RandomizationOptions{NPerms: r.Perms, Seed: r.Seed}
}
