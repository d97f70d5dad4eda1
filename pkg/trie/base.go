package trie

import (
	"github.com/merklenet/statetrie/pkg/crypto/hash"
	"github.com/merklenet/statetrie/pkg/util"
)

// BaseNode implements basic things every node needs like caching hash and
// canonical encoding. It's a basic node building block intended to be
// included into all node types.
type BaseNode struct {
	hash       util.Uint256
	bytes      []byte
	hashValid  bool
	bytesValid bool
}

// getHash returns a hash of this BaseNode.
func (b *BaseNode) getHash(n Node) util.Uint256 {
	if !b.hashValid {
		b.updateHash(n)
	}
	return b.hash
}

// getBytes returns the canonical encoding of this node.
func (b *BaseNode) getBytes(n Node) []byte {
	if !b.bytesValid {
		b.updateBytes(n)
	}
	return b.bytes
}

// updateHash updates the hash field for this BaseNode.
func (b *BaseNode) updateHash(n Node) {
	if n.Type() == HashT {
		panic("can't update hash for hash node")
	}
	b.hash = hash.Keccak256(b.getBytes(n))
	b.hashValid = true
}

// updateBytes updates the encoding field for this BaseNode.
func (b *BaseNode) updateBytes(n Node) {
	b.bytes = encodeNode(n)
	b.bytesValid = true
}

// invalidateCache sets all cache fields to invalid state.
func (b *BaseNode) invalidateCache() {
	b.bytesValid = false
	b.hashValid = false
}
