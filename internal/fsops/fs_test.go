package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "ws.code-workspace")

	if err := fs.AtomicWrite(path, []byte(`{"folders": []}`), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"folders": []}` {
		t.Errorf("unexpected content: %q", data)
	}

	// No temp files should remain after a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after write, got %d", len(entries))
	}
}

func TestRealFS_AtomicWrite_Overwrite(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "file.json")

	if err := fs.AtomicWrite(path, []byte("first"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if err := fs.AtomicWrite(path, []byte("second"), 0644); err != nil {
		t.Fatalf("AtomicWrite() overwrite error = %v", err)
	}

	data, _ := fs.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}
}

func TestRealFS_AtomicWrite_CreatesParent(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "a", "b", "file.json")

	if err := fs.AtomicWrite(path, []byte("x"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if ok, _ := fs.Exists(path); !ok {
		t.Error("expected file to exist")
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	ok, err := fs.Exists(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if ok {
		t.Error("expected missing path to not exist")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	ok, err = fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !ok {
		t.Error("expected path to exist")
	}
}

func TestRealFS_ReadFile_NotExist(t *testing.T) {
	fs := NewRealFS()
	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}
