package trie

import (
	"bytes"

	"github.com/merklenet/statetrie/pkg/crypto/hash"
	"github.com/merklenet/statetrie/pkg/util"
)

// GetProof returns a proof that key belongs to t. The proof consists of
// the canonical encodings of the nodes occurring on the path from the root
// to the node holding the value of key (a leaf, or a branch for a key
// ending there). Nodes short enough to be embedded into their parent
// contribute no element of their own, their encoding already is a part of
// the parent's one.
func (t *Trie) GetProof(key []byte) ([][]byte, error) {
	var proof [][]byte
	path := toNibbles(key)
	if err := t.getProof(t.root, path, &proof); err != nil {
		return nil, err
	}
	return proof, nil
}

func (t *Trie) getProof(curr Node, path []byte, proofs *[][]byte) error {
	if curr.Type() == EmptyT {
		return ErrNotFound
	}
	if len(*proofs) == 0 || len(curr.Bytes()) >= util.Uint256Size {
		*proofs = append(*proofs, copySlice(curr.Bytes()))
	}
	switch n := curr.(type) {
	case *LeafNode:
		if bytes.Equal(n.path, path) {
			return nil
		}
	case *BranchNode:
		if len(path) == 0 {
			if len(n.value) != 0 {
				return nil
			}
			return ErrNotFound
		}
		i, path := splitPath(path)
		return t.getProof(n.Children[i], path, proofs)
	case *ExtensionNode:
		if bytes.HasPrefix(path, n.key) {
			return t.getProof(n.next, path[len(n.key):], proofs)
		}
	default:
		panic("invalid MPT node type")
	}
	return ErrNotFound
}

// VerifyProof verifies that key maps to value in an MPT with the specified
// root hash. The proof is an ordered list of canonical node encodings
// starting at the root; it needs no trie instance and no access to the
// nodes beyond the ones listed. An empty proof is valid only for the empty
// root together with an empty value.
func VerifyProof(root util.Uint256, key, value []byte, proof [][]byte) bool {
	if len(proof) == 0 {
		return root.Equals(EmptyRootHash()) && len(value) == 0
	}

	path := toNibbles(key)
	if !hash.Keccak256(proof[0]).Equals(root) {
		return false
	}
	n, err := DecodeNode(proof[0])
	if err != nil {
		return false
	}
	next := 1

	for {
		switch curr := n.(type) {
		case EmptyNode:
			return false
		case *LeafNode:
			return bytes.Equal(curr.path, path) && bytes.Equal(curr.value, value)
		case *ExtensionNode:
			if !bytes.HasPrefix(path, curr.key) {
				return false
			}
			path = path[len(curr.key):]
			n = curr.next
		case *BranchNode:
			if len(path) == 0 {
				return len(curr.value) != 0 && bytes.Equal(curr.value, value)
			}
			var i byte
			i, path = splitPath(path)
			n = curr.Children[i]
		case *HashNode:
			if next >= len(proof) {
				return false
			}
			e := proof[next]
			next++
			if !hash.Keccak256(e).Equals(curr.Hash()) {
				return false
			}
			if n, err = DecodeNode(e); err != nil {
				return false
			}
		default:
			return false
		}
	}
}
