package collections

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the compact JSON
// form of the collection.
//
// Collections with the same entries in the same order share a fingerprint;
// reordering entries changes it. Useful as a cache key or to detect changes
// between two snapshots.
func (c *Collection[V]) Fingerprint() (string, error) {
	b, err := c.ToJSON(0)
	if err != nil {
		return "", fmt.Errorf("collections: fingerprint: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
