package trie

// toNibbles mangles the key by splitting every byte into a pair of nibbles,
// high half first. The result is twice as long as the key.
func toNibbles(key []byte) []byte {
	result := make([]byte, len(key)*2)
	for i, b := range key {
		result[i*2] = b >> 4
		result[i*2+1] = b & 0x0F
	}
	return result
}

// fromNibbles packs a nibble path back into bytes. The path length must be
// even, an odd path can't be represented without a hex-prefix tag.
func fromNibbles(path []byte) []byte {
	if len(path)%2 != 0 {
		panic("odd nibble path can't be converted to bytes")
	}
	result := make([]byte, len(path)/2)
	for i := range result {
		result[i] = path[i*2]<<4 | path[i*2+1]
	}
	return result
}

// lcp returns the longest common prefix of a and b.
func lcp(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	var i int
	for i = range b {
		if a[i] != b[i] {
			break
		} else if i == len(b)-1 {
			i++
		}
	}

	return a[:i]
}

// splitPath splits the path into the first nibble and the rest.
func splitPath(path []byte) (byte, []byte) {
	return path[0], path[1:]
}

// copySlice is a helper for copying a slice.
func copySlice(a []byte) []byte {
	b := make([]byte, len(a))
	copy(b, a)
	return b
}
