package trie

import (
	"encoding/hex"
	"encoding/json"

	"github.com/merklenet/statetrie/pkg/util"
)

// LeafNode represents MPT's leaf node: the remaining nibble path of a
// single key together with its value.
type LeafNode struct {
	BaseNode
	path  []byte
	value []byte
}

var _ Node = (*LeafNode)(nil)

// NewLeafNode returns a leaf node with the specified path suffix and value.
// Note: since it is a part of a Trie, the path must be mangled, i.e. must
// contain only bytes with high half = 0.
func NewLeafNode(path, value []byte) *LeafNode {
	return &LeafNode{
		path:  path,
		value: value,
	}
}

// Type implements Node interface.
func (n LeafNode) Type() NodeType { return LeafT }

// Hash implements Node interface.
func (n *LeafNode) Hash() util.Uint256 {
	return n.getHash(n)
}

// Bytes implements Node interface.
func (n *LeafNode) Bytes() []byte {
	return n.getBytes(n)
}

// MarshalJSON implements the json.Marshaler.
func (n *LeafNode) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"path":  hex.EncodeToString(n.path),
		"value": hex.EncodeToString(n.value),
	}
	return json.Marshal(m)
}
