package engine

import (
	"context"
	"path/filepath"
)

// Hide removes a visible folder from the descriptor and parks it in the
// hidden list.
//
// Algorithm:
//  1. Locate and read the descriptor
//  2. Apply the hide transformation (guards: target visible, not last folder)
//  3. Write the descriptor back atomically, unless dry-run
//
// Guard failures surface the workspace sentinel errors and leave the file
// byte-for-byte untouched.
func (e *Engine) Hide(ctx context.Context, req *HideRequest) (*HideResult, error) {
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

	if err := d.Hide(e.cfg.SettingsKey, target, baseDir, e.clock.Now()); err != nil {
		return nil, err
	}

	hidden, err := d.HiddenFolders(e.cfg.SettingsKey)
	if err != nil {
		return nil, err
	}
	result := &HideResult{
		Location:     location,
		Hidden:       hidden[len(hidden)-1].Path,
		VisibleCount: len(d.Folders),
		HiddenCount:  len(hidden),
		DryRun:       req.DryRun,
	}

	if req.DryRun {
		return result, nil
	}

	if err := e.writeDescriptor(location, d, snap); err != nil {
		return nil, err
	}

	e.log.Info().Str("folder", result.Hidden).Str("location", location).Msg("folder hidden")
	return result, nil
}
