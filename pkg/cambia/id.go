package cambia

import "crypto/sha256"

// ResponseID computes the stable archive-key hash (SHA-256) of a log's raw
// bytes. Both CambiaResponse.ID and the archive directory's id-keyed
// filenames are derived from this so the two always agree for the same
// input.
func ResponseID(raw []byte) []byte {
	sum := sha256.Sum256(raw)
	return sum[:]
}
