package workspace

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecode_Basic(t *testing.T) {
	data := []byte(`{
        "folders": [
            {"path": "api", "name": "API"},
            {"path": "web"}
        ],
        "settings": {
            "editor.tabSize": 2
        }
    }`)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(d.Folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(d.Folders))
	}
	if d.Folders[0].Path != "api" || d.Folders[0].Name != "API" {
		t.Errorf("unexpected first folder: %+v", d.Folders[0])
	}
	if d.Folders[1].Name != "" {
		t.Errorf("expected empty name, got %q", d.Folders[1].Name)
	}
	if d.Settings["editor.tabSize"] != float64(2) {
		t.Errorf("settings not passed through: %v", d.Settings)
	}
}

func TestDecode_CommentsAndTrailingCommas(t *testing.T) {
	// The editor writes JSONC; both comment styles and trailing commas must parse.
	data := []byte(`{
        // workspace roots
        "folders": [
            {"path": "api"},
            {"path": "web"}, /* trailing comma next */
        ],
    }`)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(d.Folders) != 2 {
		t.Errorf("expected 2 folders, got %d", len(d.Folders))
	}
	if d.Settings != nil {
		t.Errorf("expected nil settings for document without settings section")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid syntax", `{"folders": [`},
		{"not an object", `[1, 2, 3]`},
		{"missing folders", `{"settings": {}}`},
		{"folders not a list", `{"folders": {"path": "api"}}`},
		{"folder entry wrong type", `{"folders": ["api"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrMalformedDescriptor) {
				t.Errorf("expected ErrMalformedDescriptor, got %v", err)
			}
		})
	}
}

func TestEncode_UnknownSectionsPassThrough(t *testing.T) {
	data := []byte(`{
        "folders": [{"path": "api"}],
        "extensions": {"recommendations": ["golang.go"]},
        "launch": {"configurations": []},
        "settings": {"editor.tabSize": 2}
    }`)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := Encode(d, 4)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("re-encoded descriptor is not valid JSON: %v", err)
	}
	for _, key := range []string{"folders", "extensions", "launch", "settings"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("expected section %q in output", key)
		}
	}
	if !strings.Contains(string(out), "golang.go") {
		t.Error("extensions section content was lost")
	}
}

func TestEncode_Indent(t *testing.T) {
	d := &Descriptor{Folders: []FolderEntry{{Path: "api"}}}

	out, err := Encode(d, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(out), "\n  \"folders\"") {
		t.Errorf("expected 2-space indent, got:\n%s", out)
	}
	if out[len(out)-1] != '\n' {
		t.Error("expected trailing newline")
	}
}

func TestEncode_OmitsAbsentSettings(t *testing.T) {
	d := &Descriptor{Folders: []FolderEntry{{Path: "api"}}}

	out, err := Encode(d, 4)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.Contains(string(out), "settings") {
		t.Errorf("settings section should be omitted when absent:\n%s", out)
	}
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	data := []byte(`{
        "folders": [
            {"path": "api", "name": "API"},
            {"path": "../lib"}
        ],
        "settings": {"files.exclude": {"**/.git": true}}
    }`)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	out, err := Encode(d, 4)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	d2, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode() of encoded output error = %v", err)
	}
	if len(d2.Folders) != 2 || d2.Folders[0] != d.Folders[0] || d2.Folders[1] != d.Folders[1] {
		t.Errorf("folders changed across round trip: %+v vs %+v", d2.Folders, d.Folders)
	}
}
