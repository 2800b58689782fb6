package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key returns the cache key of input rendered to format.
// The key format is: render:<format>:<sha256(input)>
func Key(format string, input []byte) string {
	return fmt.Sprintf("render:%s:%s", format, Hash(input))
}

// ScopedKey prefixes key with a namespace so several tenants can share one
// backend, e.g. ScopedKey("server", Key("svg", data)).
func ScopedKey(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + ":" + key
}
