// File: internal/config/config.go
// Brief: Typed CLI options shared across stackctl commands.

// Package config defines the flag plumbing and runtime options shared by
// stackctl's commands, translating Cobra/Viper flag values into a strongly
// typed struct the registry and executor consume.
package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// Options holds the global configuration every command consumes.
type Options struct {
	// Root is the directory discovery walks for compose stacks.
	Root string
	// ComposeCommand is the external lifecycle tool, e.g. "docker compose".
	ComposeCommand string
	// LogLevel controls diagnostic verbosity (debug, info, warn, error).
	LogLevel string
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Root:           ".",
		ComposeCommand: "docker compose",
		LogLevel:       "info",
	}
}

// BindFlags attaches the options to a flag set.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Root, "root", "r", o.Root, "Root directory to discover stacks under")
	fs.StringVar(&o.ComposeCommand, "compose-command", o.ComposeCommand, "Command used to drive stacks (e.g. \"docker compose\" or \"podman-compose\")")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level for stackctl diagnostics (debug, info, warn, error)")
}

// Complete normalizes the options after flag parsing: tilde expansion and
// absolute root resolution.
func (o *Options) Complete() error {
	root, err := homedir.Expand(o.Root)
	if err != nil {
		return fmt.Errorf("expand root %q: %w", o.Root, err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root %q: %w", root, err)
	}
	o.Root = abs
	return nil
}
