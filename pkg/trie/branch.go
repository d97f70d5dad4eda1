package trie

import (
	"encoding/hex"
	"encoding/json"

	"github.com/merklenet/statetrie/pkg/util"
)

// BranchNode represents an MPT's branch node: 16 child slots, one per
// nibble, plus a terminal value for the key ending exactly at this node.
type BranchNode struct {
	BaseNode
	Children [childrenCount]Node
	value    []byte
}

var _ Node = (*BranchNode)(nil)

// NewBranchNode returns a new branch node with all child slots empty.
func NewBranchNode() *BranchNode {
	b := new(BranchNode)
	for i := range b.Children {
		b.Children[i] = EmptyNode{}
	}
	return b
}

// Type implements Node interface.
func (b BranchNode) Type() NodeType { return BranchT }

// Hash implements Node interface.
func (b *BranchNode) Hash() util.Uint256 {
	return b.getHash(b)
}

// Bytes implements Node interface.
func (b *BranchNode) Bytes() []byte {
	return b.getBytes(b)
}

// MarshalJSON implements the json.Marshaler.
func (b *BranchNode) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"children": b.Children[:],
	}
	if len(b.value) != 0 {
		m["value"] = hex.EncodeToString(b.value)
	}
	return json.Marshal(m)
}
