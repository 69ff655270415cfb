// Package gitlib provides a small interface over git repositories using
// libgit2: opening, revision resolution, history walking and first-parent
// tree diffs. It wraps the git2go types so callers never touch libgit2
// resources directly.
package gitlib

import (
	"encoding/hex"

	git2go "github.com/libgit2/git2go/v34"
)

// HashSize is the size of a SHA-1 object id in bytes.
const HashSize = 20

// Hash is a git object id.
type Hash [HashSize]byte

// NewHash parses a hex string into a Hash. Short or invalid input yields a
// partially filled hash; this is only used by tests and fixtures.
func NewHash(hexStr string) Hash {
	var h Hash

	decoded, err := hex.DecodeString(hexStr)
	if err == nil {
		copy(h[:], decoded)
	}

	return h
}

// HashFromOid converts a libgit2 Oid to a Hash.
func HashFromOid(oid *git2go.Oid) Hash {
	var h Hash
	copy(h[:], oid[:])

	return h
}

// ToOid converts the hash back to a libgit2 Oid.
func (h Hash) ToOid() *git2go.Oid {
	oid := new(git2go.Oid)
	copy(oid[:], h[:])

	return oid
}

// String returns the full 40-character hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}
