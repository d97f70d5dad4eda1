package hash

import (
	"golang.org/x/crypto/sha3"

	"github.com/merklenet/statetrie/pkg/util"
)

// Keccak256 hashes the incoming byte slice with the legacy Keccak-256
// function. This is the Ethereum variant of Keccak, not NIST SHA3-256:
// the two differ in the padding byte.
func Keccak256(data []byte) util.Uint256 {
	var u util.Uint256
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	h.Sum(u[:0])
	return u
}
