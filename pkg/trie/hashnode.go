package trie

import (
	"github.com/merklenet/statetrie/pkg/util"
)

// HashNode is an opaque reference to a node known only by its hash. It
// appears when decoding encodings whose children are referenced by digest
// and is never a part of a built trie.
type HashNode struct {
	BaseNode
}

var _ Node = (*HashNode)(nil)

// NewHashNode returns a hash node with the specified hash.
func NewHashNode(h util.Uint256) *HashNode {
	return &HashNode{
		BaseNode: BaseNode{
			hash:      h,
			hashValid: true,
		},
	}
}

// Type implements Node interface.
func (h *HashNode) Type() NodeType { return HashT }

// Hash implements Node interface.
func (h *HashNode) Hash() util.Uint256 {
	if !h.hashValid {
		panic("can't get hash of an empty HashNode")
	}
	return h.hash
}

// Bytes implements Node interface. A hash node has no preimage, so it has
// no canonical encoding either.
func (h *HashNode) Bytes() []byte {
	panic("can't serialize hash node")
}

// MarshalJSON implements the json.Marshaler.
func (h *HashNode) MarshalJSON() ([]byte, error) {
	return []byte(`{"hash":"` + h.hash.String() + `"}`), nil
}
