package workspace

import "path/filepath"

// normalizePath resolves a folder path for comparison. Relative paths resolve
// against baseDir (the directory containing the descriptor file); absolute
// paths are cleaned. Entries themselves are never rewritten, only compared
// through this form.
func normalizePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// samePath reports whether two folder paths refer to the same location
// relative to baseDir.
func samePath(a, b, baseDir string) bool {
	return normalizePath(a, baseDir) == normalizePath(b, baseDir)
}
