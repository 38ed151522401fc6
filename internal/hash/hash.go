// Package hash provides content hashing for change detection.
//
// wsfold checksums the descriptor bytes it read before writing a modified
// version back, so an edit made by the host between read and write is caught
// instead of silently overwritten. A real SHA-256 implementation and a fake
// for testing are provided.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// Sum computes the hash of the given bytes.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum computes the hex-encoded SHA-256 hash of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with canned hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{hashes: make(map[string]string)}
}

// SetHash sets the hash returned for a specific input.
func (h *FakeHasher) SetHash(data, hash string) {
	h.hashes[data] = hash
}

// Sum returns the canned hash for data, or "fakehash" if none was set.
func (h *FakeHasher) Sum(data []byte) string {
	if hash, ok := h.hashes[string(data)]; ok {
		return hash
	}
	return "fakehash"
}
