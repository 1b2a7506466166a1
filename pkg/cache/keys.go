package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey builds the cache key for a rendered artifact: the spec
// content hash plus the output format and raster scale, so one spec
// can cache several renders side by side.
func ArtifactKey(specHash, format string, scale float64) string {
	return fmt.Sprintf("artifact:%s:%s:%g", specHash, format, scale)
}
