package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys for gallery artifacts.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the given width.
	ArtifactKey(width int, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render inputs that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Style    string  `json:"style,omitempty"`
	Columns  int     `json:"columns,omitempty"`
	Collapse bool    `json:"collapse,omitempty"`
	Color    bool    `json:"color,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(width int, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, width, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
