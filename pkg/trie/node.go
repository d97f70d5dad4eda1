package trie

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/merklenet/statetrie/pkg/util"
)

// NodeType represents node type.
type NodeType byte

// Node types definitions.
const (
	BranchT    NodeType = 0x00
	ExtensionT NodeType = 0x01
	HashT      NodeType = 0x02
	LeafT      NodeType = 0x03
	EmptyT     NodeType = 0x04
)

// childrenCount is the number of slots in a branch node, one per nibble.
const childrenCount = 16

// Node represents common interface of all MPT nodes.
type Node interface {
	// Hash returns the Keccak-256 digest of the node's canonical encoding.
	Hash() util.Uint256
	// Bytes returns the node's canonical RLP encoding.
	Bytes() []byte
	Type() NodeType
}

// encodeNode returns the canonical RLP encoding of n:
// a 2-item list for leaf and extension nodes, a 17-item list for
// branch nodes and the empty string for the empty node.
func encodeNode(n Node) []byte {
	var (
		enc []byte
		err error
	)
	switch t := n.(type) {
	case EmptyNode:
		return []byte{emptyStringCode}
	case *LeafNode:
		enc, err = rlp.EncodeToBytes([]any{hpEncode(t.path, true), t.value})
	case *ExtensionNode:
		enc, err = rlp.EncodeToBytes([]any{hpEncode(t.key, false), refOf(t.next)})
	case *BranchNode:
		items := make([]any, childrenCount+1)
		for i := range t.Children {
			items[i] = refOf(t.Children[i])
		}
		items[childrenCount] = t.value
		enc, err = rlp.EncodeToBytes(items)
	case *HashNode:
		panic("can't encode a hash node")
	default:
		panic("invalid MPT node type")
	}
	if err != nil {
		panic(fmt.Sprintf("node encoding failed: %v", err))
	}
	return enc
}

// emptyStringCode is the RLP encoding of the empty byte string.
const emptyStringCode = 0x80

// refOf returns the reference to n as it appears inside the parent's
// encoding: the canonical encoding itself when it is shorter than 32 bytes,
// the 32-byte hash otherwise.
func refOf(n Node) any {
	if n.Type() == HashT {
		return n.Hash().Bytes()
	}
	enc := n.Bytes()
	if len(enc) < util.Uint256Size {
		return rlp.RawValue(enc)
	}
	return n.Hash().Bytes()
}

// DecodeNode decodes a node from its canonical encoding. Children
// referenced by hash are represented as HashNode, children short enough to
// be embedded into the parent are decoded in place.
func DecodeNode(enc []byte) (Node, error) {
	if len(enc) == 0 {
		return nil, errors.New("empty node encoding")
	}
	kind, content, _, err := rlp.Split(enc)
	if err != nil {
		return nil, fmt.Errorf("invalid node encoding: %w", err)
	}
	switch kind {
	case rlp.String, rlp.Byte:
		if len(content) == 0 {
			return EmptyNode{}, nil
		}
		return nil, errors.New("unexpected string node encoding")
	default:
		elems, _, _ := rlp.SplitList(enc)
		c, err := rlp.CountValues(elems)
		if err != nil {
			return nil, fmt.Errorf("invalid node list: %w", err)
		}
		switch c {
		case 2:
			return decodeShortNode(elems)
		case childrenCount + 1:
			return decodeBranchNode(elems)
		default:
			return nil, fmt.Errorf("invalid number of list elements: %d", c)
		}
	}
}

// decodeShortNode decodes a 2-item node, either a leaf or an extension
// depending on the hex-prefix tag.
func decodeShortNode(elems []byte) (Node, error) {
	kbuf, rest, err := rlp.SplitString(elems)
	if err != nil {
		return nil, fmt.Errorf("invalid path item: %w", err)
	}
	path, isLeaf, err := hpDecode(kbuf)
	if err != nil {
		return nil, err
	}
	if isLeaf {
		value, _, err := rlp.SplitString(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid value item: %w", err)
		}
		return NewLeafNode(path, copySlice(value)), nil
	}
	if len(path) == 0 {
		return nil, errors.New("empty path in extension node")
	}
	next, _, err := decodeRef(rest)
	if err != nil {
		return nil, err
	}
	return NewExtensionNode(path, next), nil
}

func decodeBranchNode(elems []byte) (Node, error) {
	b := NewBranchNode()
	rest := elems
	var err error
	for i := range b.Children {
		b.Children[i], rest, err = decodeRef(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid child %d: %w", i, err)
		}
	}
	value, _, err := rlp.SplitString(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid branch value: %w", err)
	}
	if len(value) > 0 {
		b.value = copySlice(value)
	}
	return b, nil
}

// decodeRef decodes a child reference: an embedded node is decoded in
// place, a 32-byte string becomes a HashNode and the empty string is the
// empty node.
func decodeRef(buf []byte) (Node, []byte, error) {
	kind, content, rest, err := rlp.Split(buf)
	switch {
	case err != nil:
		return nil, nil, fmt.Errorf("invalid child reference: %w", err)
	case kind == rlp.List:
		size := len(buf) - len(rest)
		if size >= util.Uint256Size {
			return nil, nil, fmt.Errorf("embedded node too large: %d bytes", size)
		}
		n, err := DecodeNode(buf[:size])
		return n, rest, err
	case len(content) == 0:
		return EmptyNode{}, rest, nil
	case len(content) == util.Uint256Size:
		h, _ := util.Uint256DecodeBytes(content)
		return NewHashNode(h), rest, nil
	default:
		return nil, nil, fmt.Errorf("invalid child reference length: %d", len(content))
	}
}
