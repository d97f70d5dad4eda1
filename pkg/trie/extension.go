package trie

import (
	"encoding/hex"
	"encoding/json"

	"github.com/merklenet/statetrie/pkg/util"
)

// ExtensionNode represents an MPT's extension node: a shared, non-empty
// nibble prefix compressed into a single node in front of a branch.
type ExtensionNode struct {
	BaseNode
	key  []byte
	next Node
}

var _ Node = (*ExtensionNode)(nil)

// NewExtensionNode returns an extension node with the specified key and
// the next node. Note: since it is a part of a Trie, the key must be
// mangled, i.e. must contain only bytes with high half = 0.
func NewExtensionNode(key []byte, next Node) *ExtensionNode {
	return &ExtensionNode{
		key:  key,
		next: next,
	}
}

// Type implements Node interface.
func (e ExtensionNode) Type() NodeType { return ExtensionT }

// Hash implements Node interface.
func (e *ExtensionNode) Hash() util.Uint256 {
	return e.getHash(e)
}

// Bytes implements Node interface.
func (e *ExtensionNode) Bytes() []byte {
	return e.getBytes(e)
}

// MarshalJSON implements the json.Marshaler.
func (e *ExtensionNode) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"key":  hex.EncodeToString(e.key),
		"next": e.next,
	}
	return json.Marshal(m)
}
