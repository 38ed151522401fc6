package engine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// descriptorExt is the file extension the host uses for workspace descriptors.
const descriptorExt = ".code-workspace"

// Locate resolves the descriptor file to operate on. An explicit location
// wins; otherwise the directories from cwd upward are searched for a single
// *.code-workspace file. Multiple candidates in the same directory is an
// error naming them, so the caller can pass one explicitly.
func (e *Engine) Locate(location, cwd string) (string, error) {
	if location != "" {
		abs, err := filepath.Abs(location)
		if err != nil {
			return "", fmt.Errorf("failed to resolve descriptor path: %w", err)
		}
		exists, err := e.fs.Exists(abs)
		if err != nil {
			return "", fmt.Errorf("failed to check descriptor path: %w", err)
		}
		if !exists {
			return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return abs, nil
	}

	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	for {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+descriptorExt))
		if err != nil {
			return "", fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		switch len(matches) {
		case 0:
			// Keep walking up.
		case 1:
			e.log.Debug().Str("location", matches[0]).Msg("descriptor discovered")
			return matches[0], nil
		default:
			sort.Strings(matches)
			return "", fmt.Errorf("multiple workspace descriptors in %s: %s (use --workspace to pick one)",
				dir, strings.Join(matches, ", "))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s file found from %s upward", ErrNoWorkspace, descriptorExt, cwd)
		}
		dir = parent
	}
}
