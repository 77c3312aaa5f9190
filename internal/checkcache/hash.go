package checkcache

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the cache key checkcache.Store/Lookup key a
// file's content by.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
