// Package integration exercises the engine end to end on real temp
// directories: descriptor discovery, config loading, and full
// hide/list/show cycles against files on disk.
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/danhyun/wsfold/internal/clock"
	"github.com/danhyun/wsfold/internal/config"
	"github.com/danhyun/wsfold/internal/engine"
	"github.com/danhyun/wsfold/internal/fsops"
	"github.com/danhyun/wsfold/internal/hash"
	"github.com/danhyun/wsfold/internal/workspace"
)

// setupWorkspace creates a workspace directory containing a descriptor file
// and the folder directories it references. Returns the descriptor path.
func setupWorkspace(t *testing.T, descriptor string, folders ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range folders {
		if err := os.MkdirAll(filepath.Join(dir, f), 0755); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "project.code-workspace")
	if err := os.WriteFile(path, []byte(descriptor), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newEngine builds an engine with the given config and a fixed clock.
func newEngine(t *testing.T, cfg *config.Config) *engine.Engine {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), clk, cfg, zerolog.Nop())
}

// decodeFile reads and decodes the descriptor at path.
func decodeFile(t *testing.T, path string) *workspace.Descriptor {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	d, err := workspace.Decode(data)
	if err != nil {
		t.Fatalf("descriptor on disk is invalid: %v", err)
	}
	return d
}
