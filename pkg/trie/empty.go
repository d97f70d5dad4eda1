package trie

import (
	"github.com/merklenet/statetrie/pkg/crypto/hash"
	"github.com/merklenet/statetrie/pkg/util"
)

// EmptyNode represents an empty subtree.
type EmptyNode struct{}

// emptyRootHash is keccak256(rlp("")), the root digest of a trie with no
// entries, well known as the Ethereum empty state root.
var emptyRootHash = hash.Keccak256([]byte{emptyStringCode})

// EmptyRootHash returns the canonical root digest of an empty trie.
func EmptyRootHash() util.Uint256 {
	return emptyRootHash
}

// Hash implements Node interface.
func (e EmptyNode) Hash() util.Uint256 {
	return emptyRootHash
}

// Bytes implements Node interface.
func (e EmptyNode) Bytes() []byte {
	return []byte{emptyStringCode}
}

// Type implements Node interface.
func (e EmptyNode) Type() NodeType {
	return EmptyT
}

// MarshalJSON implements the json.Marshaler.
func (e EmptyNode) MarshalJSON() ([]byte, error) {
	return []byte(`{}`), nil
}
