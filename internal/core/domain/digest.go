package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the hex xxhash64 of a manifest.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
