package config

import (
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Output formats accepted by the output key.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the effective configuration of one invocation.
type Config struct {
	SourceRoot string     `koanf:"source_root" toml:"source_root"`
	Home       string     `koanf:"home" toml:"home"`
	DryRun     bool       `koanf:"dry_run" toml:"dry_run"`
	Force      bool       `koanf:"force" toml:"force"`
	Verbose    bool       `koanf:"verbose" toml:"verbose"`
	Output     string     `koanf:"output" toml:"output"`
	Walk       WalkConfig `koanf:"walk" toml:"walk"`

	// File is the user config file that was loaded, if any.
	File string `koanf:"-" toml:"-"`
}

// WalkConfig controls which source entries are visited.
type WalkConfig struct {
	IncludeHidden bool     `koanf:"include_hidden" toml:"include_hidden"`
	Ignore        []string `koanf:"ignore" toml:"ignore"`
}

// RunMode returns the run mode the configuration asks for.
func (c *Config) RunMode() types.RunMode {
	return types.RunMode{
		DryRun:  c.DryRun,
		Force:   c.Force,
		Verbose: c.Verbose,
	}
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want text, json or yaml)", c.Output).
			WithDetail("key", "output")
	}
	if err := paths.ValidatePatterns(c.Walk.Ignore); err != nil {
		return err
	}
	if c.SourceRoot == "" {
		return errors.New(errors.ErrInvalidInput, "source_root must not be empty").
			WithDetail("key", "source_root")
	}
	return nil
}
