// Package engine provides the core orchestration for wsfold operations.
//
// The engine sits between the CLI and the pure descriptor transformations in
// the workspace package. Every operation is a short read-transform-write
// cycle: locate the descriptor file, read and decode it, apply the requested
// visibility change, and write the result back atomically. The descriptor
// bytes are checksummed at read time and verified immediately before the
// write, so an edit made by the host in between fails the operation instead
// of being silently overwritten.
//
// Key components:
//   - Engine: coordinates filesystem, hashing, clock, and config dependencies
//   - Hide/Show/List: the visibility operations exposed to the CLI
//   - Locate: workspace descriptor discovery from the working directory
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/danhyun/wsfold/internal/clock"
	"github.com/danhyun/wsfold/internal/config"
	"github.com/danhyun/wsfold/internal/fsops"
	"github.com/danhyun/wsfold/internal/hash"
	"github.com/danhyun/wsfold/internal/workspace"
)

// Engine orchestrates all wsfold operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	cfg    *config.Config
	log    zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, cfg *config.Config, log zerolog.Logger) *Engine {
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		cfg:    cfg,
		log:    log,
	}
}

// snapshot captures what was read from disk so the write step can detect
// interleaved modifications.
type snapshot struct {
	checksum string
}

// readDescriptor reads and decodes the descriptor at location.
func (e *Engine) readDescriptor(location string) (*workspace.Descriptor, *snapshot, error) {
	data, err := e.fs.ReadFile(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	d, err := workspace.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	e.log.Debug().Str("location", location).Int("folders", len(d.Folders)).Msg("descriptor read")
	return d, &snapshot{checksum: e.hasher.Sum(data)}, nil
}

// writeDescriptor encodes the descriptor and replaces the file at location
// atomically. The current file content is re-read first; a checksum mismatch
// against the read-time snapshot aborts with ErrConcurrentModification.
func (e *Engine) writeDescriptor(location string, d *workspace.Descriptor, snap *snapshot) error {
	current, err := e.fs.ReadFile(location)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: failed to re-read descriptor: %v", ErrPersistence, err)
		}
	} else if e.hasher.Sum(current) != snap.checksum {
		return fmt.Errorf("%w: %s changed since it was read", ErrConcurrentModification, location)
	}

	data, err := workspace.Encode(d, e.cfg.Indent)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := e.fs.AtomicWrite(location, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	e.log.Debug().Str("location", location).Msg("descriptor written")
	return nil
}

// resolveTarget turns a user-provided folder path into an absolute path.
// Relative paths resolve against the working directory the command ran in.
func resolveTarget(target, cwd string) string {
	if target == "" || filepath.IsAbs(target) || cwd == "" {
		return target
	}
	return filepath.Join(cwd, target)
}
