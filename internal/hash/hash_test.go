package hash

import "testing"

func TestSHA256Hasher_Sum(t *testing.T) {
	h := NewSHA256Hasher()

	// Known SHA-256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := h.Sum([]byte("hello")); got != want {
		t.Errorf("Sum() = %q, want %q", got, want)
	}
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := NewSHA256Hasher()

	a := h.Sum([]byte(`{"folders": []}`))
	b := h.Sum([]byte(`{"folders": []}`))
	if a != b {
		t.Errorf("same input hashed differently: %q vs %q", a, b)
	}

	c := h.Sum([]byte(`{"folders": [{"path": "."}]}`))
	if a == c {
		t.Error("different inputs produced the same hash")
	}
}

func TestFakeHasher(t *testing.T) {
	h := NewFakeHasher()

	if got := h.Sum([]byte("anything")); got != "fakehash" {
		t.Errorf("default Sum() = %q, want %q", got, "fakehash")
	}

	h.SetHash("data", "abc123")
	if got := h.Sum([]byte("data")); got != "abc123" {
		t.Errorf("Sum() = %q, want %q", got, "abc123")
	}
}
