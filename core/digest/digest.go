// Package digest computes the hash pair recorded in document metadata.
// SHA-256 is the primary hash; BLAKE3 is kept alongside it for
// consumers that key caches on the faster hash.
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hashes holds both digests of a source artifact.
type Hashes struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Sum computes both hashes of data.
func Sum(data []byte) Hashes {
	sha := sha256.Sum256(data)
	b3 := blake3.Sum256(data)
	return Hashes{
		SHA256: hex.EncodeToString(sha[:]),
		BLAKE3: hex.EncodeToString(b3[:]),
	}
}
