package workspace

import (
	"fmt"
	"time"
)

// Hide removes the folder at target from the visible folder list and appends
// it to the hidden list stored under settingsKey. The entry's position and
// the hide time are recorded so Show can restore it in place.
//
// Guards run before any mutation: an unknown target fails with
// ErrFolderNotVisible and hiding the only remaining folder fails with
// ErrLastFolder, leaving the descriptor untouched in both cases.
func (d *Descriptor) Hide(settingsKey, target, baseDir string, now time.Time) error {
	hidden, err := d.HiddenFolders(settingsKey)
	if err != nil {
		return err
	}

	idx := -1
	for i, entry := range d.Folders {
		if samePath(entry.Path, target, baseDir) {
			idx = i
			break
		}
	}
	if idx < 0 {
		for _, h := range hidden {
			if samePath(h.Path, target, baseDir) {
				return fmt.Errorf("%w: %s is already hidden", ErrFolderNotVisible, target)
			}
		}
		return fmt.Errorf("%w: %s", ErrFolderNotVisible, target)
	}

	if len(d.Folders) < 2 {
		return fmt.Errorf("%w: %s", ErrLastFolder, target)
	}

	entry := d.Folders[idx]
	d.Folders = append(d.Folders[:idx], d.Folders[idx+1:]...)
	hidden = append(hidden, HiddenFolder{
		Path:     entry.Path,
		Name:     entry.Name,
		Index:    idx,
		HiddenAt: now,
	})
	d.setHiddenFolders(settingsKey, hidden)

	return nil
}

// Show restores a hidden folder to the visible folder list. With an empty
// target the most recently hidden folder is restored (last in, first out);
// restoring from an empty hidden list is then a no-op and returns nil. A
// named target missing from the hidden list fails with ErrFolderNotHidden.
//
// The entry is reinserted at the position recorded when it was hidden,
// clamped to the current folder count.
func (d *Descriptor) Show(settingsKey, target, baseDir string) (*HiddenFolder, error) {
	hidden, err := d.HiddenFolders(settingsKey)
	if err != nil {
		return nil, err
	}

	if len(hidden) == 0 {
		if target == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrFolderNotHidden, target)
	}

	idx := len(hidden) - 1
	if target != "" {
		idx = -1
		for i, h := range hidden {
			if samePath(h.Path, target, baseDir) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotHidden, target)
		}
	}

	restored := hidden[idx]
	hidden = append(hidden[:idx], hidden[idx+1:]...)

	at := restored.Index
	if at < 0 {
		at = 0
	}
	if at > len(d.Folders) {
		at = len(d.Folders)
	}
	d.Folders = append(d.Folders[:at], append([]FolderEntry{restored.Entry()}, d.Folders[at:]...)...)
	d.setHiddenFolders(settingsKey, hidden)

	return &restored, nil
}

// Visibility returns the visible and hidden folder lists in order. It never
// mutates the descriptor; callers use it to render pickers and listings.
func (d *Descriptor) Visibility(settingsKey string) ([]FolderEntry, []HiddenFolder, error) {
	hidden, err := d.HiddenFolders(settingsKey)
	if err != nil {
		return nil, nil, err
	}

	visible := make([]FolderEntry, len(d.Folders))
	copy(visible, d.Folders)

	return visible, hidden, nil
}
