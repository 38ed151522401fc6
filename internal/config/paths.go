// Package config manages wsfold configuration and filesystem paths.
//
// Configuration lives under a single root directory (default ~/.wsfold),
// overridable with the WSFOLD_ROOT environment variable. The root holds an
// optional config.yaml tuning descriptor handling.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by wsfold.
type Paths struct {
	// Root is the base directory for all wsfold data (default: ~/.wsfold)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for wsfold.
// The root can be overridden with the WSFOLD_ROOT environment variable.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("WSFOLD_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".wsfold")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
