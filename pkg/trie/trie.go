package trie

import (
	"bytes"
	"errors"

	"github.com/merklenet/statetrie/pkg/util"
)

// Trie is an in-memory MPT trie storing all key-value pairs. It owns every
// reachable node, the tree is mutated only through Put and the root digest
// after a sequence of puts depends on the resulting key-value set alone.
type Trie struct {
	root Node
}

// ErrNotFound is returned when the requested trie item is missing.
var ErrNotFound = errors.New("item not found")

// NewTrie returns a new empty MPT trie.
func NewTrie() *Trie {
	return &Trie{
		root: EmptyNode{},
	}
}

// Get returns the value for the provided key in t.
func (t *Trie) Get(key []byte) ([]byte, error) {
	path := toNibbles(key)
	return getFromNode(t.root, path)
}

// getFromNode returns the value for the provided path in a subtrie rooting
// in curr.
func getFromNode(curr Node, path []byte) ([]byte, error) {
	switch n := curr.(type) {
	case EmptyNode:
	case *LeafNode:
		if bytes.Equal(n.path, path) {
			return copySlice(n.value), nil
		}
	case *BranchNode:
		if len(path) == 0 {
			if len(n.value) == 0 {
				return nil, ErrNotFound
			}
			return copySlice(n.value), nil
		}
		i, path := splitPath(path)
		return getFromNode(n.Children[i], path)
	case *ExtensionNode:
		if bytes.HasPrefix(path, n.key) {
			return getFromNode(n.next, path[len(n.key):])
		}
	default:
		panic("invalid MPT node type")
	}
	return nil, ErrNotFound
}

// Put puts key-value pair in t. An empty value is not representable: the
// encoding treats it the same as a missing key.
func (t *Trie) Put(key, value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	path := toNibbles(key)
	t.root = t.putIntoNode(t.root, path, copySlice(value))
	return nil
}

func (t *Trie) putIntoNode(curr Node, path []byte, value []byte) Node {
	switch n := curr.(type) {
	case EmptyNode:
		return NewLeafNode(path, value)
	case *LeafNode:
		return t.putIntoLeaf(n, path, value)
	case *BranchNode:
		return t.putIntoBranch(n, path, value)
	case *ExtensionNode:
		return t.putIntoExtension(n, path, value)
	default:
		panic("invalid MPT node type")
	}
}

// putIntoLeaf puts value into the trie if the current node is a Leaf. The
// paths diverge into a new branch holding what remains of both keys after
// the shared prefix; the prefix itself, if any, becomes an extension.
func (t *Trie) putIntoLeaf(curr *LeafNode, path []byte, value []byte) Node {
	if bytes.Equal(curr.path, path) {
		return NewLeafNode(path, value)
	}

	pref := lcp(curr.path, path)
	lp := len(pref)
	leafTail := curr.path[lp:]
	pathTail := path[lp:]

	b := NewBranchNode()
	if len(leafTail) == 0 {
		b.value = curr.value
	} else {
		b.Children[leafTail[0]] = NewLeafNode(leafTail[1:], curr.value)
	}
	if len(pathTail) == 0 {
		b.value = value
	} else {
		b.Children[pathTail[0]] = NewLeafNode(pathTail[1:], value)
	}

	if lp > 0 {
		return NewExtensionNode(copySlice(pref), b)
	}
	return b
}

// putIntoBranch puts value into the trie if the current node is a Branch.
func (t *Trie) putIntoBranch(curr *BranchNode, path []byte, value []byte) Node {
	if len(path) == 0 {
		curr.value = value
		curr.invalidateCache()
		return curr
	}
	i, path := splitPath(path)
	curr.Children[i] = t.putIntoNode(curr.Children[i], path, value)
	curr.invalidateCache()
	return curr
}

// putIntoExtension puts value into the trie if the current node is an
// Extension.
func (t *Trie) putIntoExtension(curr *ExtensionNode, path []byte, value []byte) Node {
	if bytes.HasPrefix(path, curr.key) {
		curr.next = t.putIntoNode(curr.next, path[len(curr.key):], value)
		curr.invalidateCache()
		return curr
	}

	pref := lcp(curr.key, path)
	lp := len(pref)
	keyTail := curr.key[lp:]
	pathTail := path[lp:]

	b := NewBranchNode()
	if len(keyTail) == 1 {
		b.Children[keyTail[0]] = curr.next
	} else {
		b.Children[keyTail[0]] = NewExtensionNode(copySlice(keyTail[1:]), curr.next)
	}
	if len(pathTail) == 0 {
		b.value = value
	} else {
		b.Children[pathTail[0]] = NewLeafNode(pathTail[1:], value)
	}

	if lp > 0 {
		return NewExtensionNode(copySlice(pref), b)
	}
	return b
}

// StateRoot returns the root hash of t. For the empty trie this is
// keccak256 of the RLP empty string.
func (t *Trie) StateRoot() util.Uint256 {
	return t.root.Hash()
}

// Root returns the root node of t. It is used by structure dumps, the
// returned node is still owned by the trie.
func (t *Trie) Root() Node {
	return t.root
}
