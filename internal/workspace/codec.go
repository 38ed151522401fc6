package workspace

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"
)

// Decode parses a workspace descriptor document. The input may contain
// comments and trailing commas (the editor writes JSONC); it is standardized
// to plain JSON before unmarshaling. Structural problems are reported as
// ErrMalformedDescriptor.
func Decode(data []byte) (*Descriptor, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}

	d := &Descriptor{}

	foldersRaw, ok := raw["folders"]
	if !ok {
		return nil, fmt.Errorf("%w: missing folders section", ErrMalformedDescriptor)
	}
	if err := json.Unmarshal(foldersRaw, &d.Folders); err != nil {
		return nil, fmt.Errorf("%w: invalid folders section: %v", ErrMalformedDescriptor, err)
	}
	delete(raw, "folders")

	if settingsRaw, ok := raw["settings"]; ok {
		if err := json.Unmarshal(settingsRaw, &d.Settings); err != nil {
			return nil, fmt.Errorf("%w: invalid settings section: %v", ErrMalformedDescriptor, err)
		}
		if d.Settings == nil {
			d.Settings = make(map[string]any)
		}
		delete(raw, "settings")
	}

	if len(raw) > 0 {
		d.extra = raw
	}

	return d, nil
}

// Encode serializes the descriptor as indented JSON with a trailing newline.
// Comments from the original document are not preserved; the host rewrites
// the file the same way when folders change.
func Encode(d *Descriptor, indent int) ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(d.extra)+2)
	for key, value := range d.extra {
		doc[key] = value
	}

	folders := d.Folders
	if folders == nil {
		folders = []FolderEntry{}
	}
	foldersRaw, err := json.Marshal(folders)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal folders: %w", err)
	}
	doc["folders"] = foldersRaw

	if d.Settings != nil {
		settingsRaw, err := json.Marshal(d.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings: %w", err)
		}
		doc["settings"] = settingsRaw
	}

	data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	return append(data, '\n'), nil
}
