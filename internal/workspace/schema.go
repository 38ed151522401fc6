// Package workspace models the multi-root workspace descriptor and the
// folder-visibility operations over it.
//
// A descriptor is a JSON document (VS Code .code-workspace format) with an
// ordered folder list, an open-ended settings map, and arbitrary other
// top-level sections. Hiding a folder moves its entry out of the folder list
// and parks it in the settings map under a reserved key, so the host stops
// displaying it but wsfold can restore it later.
//
// Key concepts:
//   - Descriptor: the parsed workspace document, unknown sections preserved
//   - FolderEntry: one visible workspace root (path plus optional label)
//   - HiddenFolder: a parked entry with its original position and hide time
//
// All operations here are pure in-memory transformations; persistence is the
// engine's responsibility.
package workspace

import (
	"encoding/json"
	"fmt"
	"time"
)

// FolderEntry is one visible folder in the descriptor's folder list.
type FolderEntry struct {
	// Path is the folder location, relative to the descriptor file or absolute.
	Path string `json:"path"`

	// Name is an optional display label.
	Name string `json:"name,omitempty"`
}

// HiddenFolder is a folder entry parked in the settings map.
type HiddenFolder struct {
	// Path is the folder location as it appeared in the folder list.
	Path string `json:"path"`

	// Name is the optional display label carried over from the entry.
	Name string `json:"name,omitempty"`

	// Index is the position the entry occupied in the folder list when it
	// was hidden, used to restore it to its original place.
	Index int `json:"index"`

	// HiddenAt records when the folder was hidden.
	HiddenAt time.Time `json:"hiddenAt"`
}

// Entry converts the hidden folder back into a visible folder entry.
func (h HiddenFolder) Entry() FolderEntry {
	return FolderEntry{Path: h.Path, Name: h.Name}
}

// Descriptor is a parsed workspace descriptor document.
//
// Folder order is meaningful (it is the host's display order) and is
// preserved across rewrites except for entries added or removed by a
// visibility operation. Settings and unknown top-level sections pass through
// unmodified.
type Descriptor struct {
	// Folders is the ordered list of visible workspace roots.
	Folders []FolderEntry

	// Settings is the descriptor's settings map, passed through opaquely.
	// The hidden-folder list lives here under a reserved key. Nil means the
	// document had no settings section.
	Settings map[string]any

	// extra holds unknown top-level sections (extensions, launch, tasks, ...)
	// as raw JSON so rewrites don't drop or reorder them.
	extra map[string]json.RawMessage
}

// HiddenFolders returns the hidden-folder list stored under key in the
// settings map. A missing key or settings section yields an empty list.
func (d *Descriptor) HiddenFolders(key string) ([]HiddenFolder, error) {
	if d.Settings == nil {
		return nil, nil
	}
	value, ok := d.Settings[key]
	if !ok || value == nil {
		return nil, nil
	}

	// The value round-trips through JSON: after decoding a descriptor it is
	// a []any of maps, after a mutation it is already []HiddenFolder.
	if hidden, ok := value.([]HiddenFolder); ok {
		out := make([]HiddenFolder, len(hidden))
		copy(out, hidden)
		return out, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: settings key %q is not serializable: %v", ErrMalformedDescriptor, key, err)
	}
	var hidden []HiddenFolder
	if err := json.Unmarshal(raw, &hidden); err != nil {
		return nil, fmt.Errorf("%w: settings key %q is not a hidden-folder list: %v", ErrMalformedDescriptor, key, err)
	}
	return hidden, nil
}

// setHiddenFolders stores the hidden-folder list under key, creating the
// settings section if the document had none.
func (d *Descriptor) setHiddenFolders(key string, hidden []HiddenFolder) {
	if d.Settings == nil {
		d.Settings = make(map[string]any)
	}
	if hidden == nil {
		hidden = []HiddenFolder{}
	}
	d.Settings[key] = hidden
}
