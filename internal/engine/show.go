package engine

import (
	"context"
	"path/filepath"
)

// Show restores a hidden folder to the descriptor's folder list.
//
// With no target path the most recently hidden folder is restored; an empty
// hidden list is then a no-op, reported via ShowResult.NoHidden rather than
// an error. A named target that is not hidden fails with ErrFolderNotHidden.
func (e *Engine) Show(ctx context.Context, req *ShowRequest) (*ShowResult, error) {
	location, err := e.Locate(req.Location, req.CWD)
	if err != nil {
		return nil, err
	}

	d, snap, err := e.readDescriptor(location)
	if err != nil {
		return nil, err
	}

	target := resolveTarget(req.Path, req.CWD)
	baseDir := filepath.Dir(location)

	restored, err := d.Show(e.cfg.SettingsKey, target, baseDir)
	if err != nil {
		return nil, err
	}

	hidden, err := d.HiddenFolders(e.cfg.SettingsKey)
	if err != nil {
		return nil, err
	}
	result := &ShowResult{
		Location:     location,
		VisibleCount: len(d.Folders),
		HiddenCount:  len(hidden),
		DryRun:       req.DryRun,
	}

	if restored == nil {
		// Nothing was hidden; the descriptor is unchanged and not rewritten.
		result.NoHidden = true
		return result, nil
	}
	result.Restored = restored.Path

	if req.DryRun {
		return result, nil
	}

	if err := e.writeDescriptor(location, d, snap); err != nil {
		return nil, err
	}

	e.log.Info().Str("folder", result.Restored).Str("location", location).Msg("folder restored")
	return result, nil
}
