package trie

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merklenet/statetrie/internal/random"
	"github.com/merklenet/statetrie/pkg/util"
)

func TestGetProof(t *testing.T) {
	t.Run("SingleLeaf", func(t *testing.T) {
		tr := NewTrie()
		require.NoError(t, tr.Put([]byte("dog"), []byte("puppy")))

		proof, err := tr.GetProof([]byte("dog"))
		require.NoError(t, err)
		require.Len(t, proof, 1)
		require.Equal(t, tr.Root().Bytes(), proof[0])
	})
	t.Run("MissingKey", func(t *testing.T) {
		tr := newTrieWithPairs(t, []kvPair{{"dog", "puppy"}, {"doge", "coin"}})
		_, err := tr.GetProof([]byte("cat"))
		require.ErrorIs(t, err, ErrNotFound)

		_, err = tr.GetProof([]byte("do"))
		require.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("EmptyTrie", func(t *testing.T) {
		_, err := NewTrie().GetProof([]byte("dog"))
		require.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("FirstElementIsRoot", func(t *testing.T) {
		tr := newTrieWithPairs(t, []kvPair{
			{"do", "verb"}, {"dog", "puppy"}, {"doge", "coin"}, {"horse", "stallion"},
		})
		for _, key := range []string{"do", "dog", "doge", "horse"} {
			proof, err := tr.GetProof([]byte(key))
			require.NoError(t, err)
			require.NotEmpty(t, proof)
			require.Equal(t, tr.Root().Bytes(), proof[0])
		}
	})
	t.Run("EmbeddedNodesContributeNoElement", func(t *testing.T) {
		// The whole trie fits into the root encoding, so every proof is a
		// single element even though the path passes several nodes.
		tr := newTrieWithPairs(t, []kvPair{{"a", "1"}, {"b", "2"}})
		for _, key := range []string{"a", "b"} {
			proof, err := tr.GetProof([]byte(key))
			require.NoError(t, err)
			require.Len(t, proof, 1)
		}
	})
}

func TestVerifyProof(t *testing.T) {
	pairs := []kvPair{
		{"do", "verb"}, {"dog", "puppy"}, {"doge", "coin"}, {"horse", "stallion"},
		{"doe", "reindeer"}, {"dogglesworth", "cat"},
	}
	tr := newTrieWithPairs(t, pairs)
	root := tr.StateRoot()

	t.Run("RoundTrip", func(t *testing.T) {
		for _, p := range pairs {
			proof, err := tr.GetProof([]byte(p.key))
			require.NoError(t, err)
			require.True(t, VerifyProof(root, []byte(p.key), []byte(p.value), proof))
		}
	})
	t.Run("WrongValue", func(t *testing.T) {
		proof, err := tr.GetProof([]byte("dog"))
		require.NoError(t, err)
		require.False(t, VerifyProof(root, []byte("dog"), []byte("hound"), proof))
		require.False(t, VerifyProof(root, []byte("dog"), nil, proof))
	})
	t.Run("WrongKey", func(t *testing.T) {
		proof, err := tr.GetProof([]byte("dog"))
		require.NoError(t, err)
		require.False(t, VerifyProof(root, []byte("doge"), []byte("puppy"), proof))
	})
	t.Run("WrongRoot", func(t *testing.T) {
		proof, err := tr.GetProof([]byte("dog"))
		require.NoError(t, err)
		require.False(t, VerifyProof(random.Uint256(), []byte("dog"), []byte("puppy"), proof))
	})
	t.Run("TamperedElement", func(t *testing.T) {
		proof, err := tr.GetProof([]byte("dogglesworth"))
		require.NoError(t, err)
		require.True(t, len(proof) > 1)

		for i := range proof {
			tampered := make([][]byte, len(proof))
			for j := range proof {
				tampered[j] = copySlice(proof[j])
			}
			tampered[i][len(tampered[i])-1] ^= 0x01
			require.False(t, VerifyProof(root, []byte("dogglesworth"), []byte("cat"), tampered))
		}
	})
	t.Run("TruncatedProof", func(t *testing.T) {
		proof, err := tr.GetProof([]byte("dogglesworth"))
		require.NoError(t, err)
		require.True(t, len(proof) > 1)
		require.False(t, VerifyProof(root, []byte("dogglesworth"), []byte("cat"), proof[:len(proof)-1]))
	})
	t.Run("EmptyProof", func(t *testing.T) {
		require.False(t, VerifyProof(root, []byte("dog"), []byte("puppy"), nil))
		require.True(t, VerifyProof(EmptyRootHash(), []byte("dog"), nil, nil))
		require.False(t, VerifyProof(EmptyRootHash(), []byte("dog"), []byte("puppy"), nil))
	})
	t.Run("GarbageElement", func(t *testing.T) {
		require.False(t, VerifyProof(root, []byte("dog"), []byte("puppy"), [][]byte{{0xDE, 0xAD}}))
	})
}

// TestProofPortability checks that a proof keeps verifying after the trie
// it came from is gone, only the root digest is needed.
func TestProofPortability(t *testing.T) {
	pairs := []kvPair{{"foo", "bar"}, {"food", "bass"}}
	var (
		root  util.Uint256
		proof [][]byte
	)
	{
		tr := newTrieWithPairs(t, pairs)
		p, err := tr.GetProof([]byte("food"))
		require.NoError(t, err)
		proof = p
		root = tr.StateRoot()
	}
	require.True(t, VerifyProof(root, []byte("food"), []byte("bass"), proof))
}

func TestProofRandom(t *testing.T) {
	tr := NewTrie()
	keys := make([][]byte, 100)
	values := make([][]byte, 100)
	for i := range keys {
		keys[i] = random.Bytes(random.Int(1, 32))
		values[i] = random.Bytes(random.Int(1, 64))
		require.NoError(t, tr.Put(keys[i], values[i]))
	}
	root := tr.StateRoot()

	for i := range keys {
		value, err := tr.Get(keys[i])
		require.NoError(t, err)

		proof, err := tr.GetProof(keys[i])
		require.NoError(t, err)
		require.True(t, VerifyProof(root, keys[i], value, proof))
	}
}
