package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danhyun/wsfold/internal/clock"
	"github.com/danhyun/wsfold/internal/config"
	"github.com/danhyun/wsfold/internal/engine"
	"github.com/danhyun/wsfold/internal/fsops"
	"github.com/danhyun/wsfold/internal/hash"
	"github.com/danhyun/wsfold/internal/logging"
)

// newEngine creates an engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.New(nil, logging.ParseLevel(verbosity))

	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), &clock.RealClock{}, cfg, log), nil
}

// descriptorLocation resolves the descriptor path from the --workspace flag
// or the WSFOLD_WORKSPACE environment variable. Empty means: discover from
// the working directory.
func descriptorLocation() string {
	if workspaceFlag != "" {
		return workspaceFlag
	}
	return os.Getenv("WSFOLD_WORKSPACE")
}

// outputJSON outputs a value as indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
