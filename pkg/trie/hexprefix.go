package trie

import (
	"errors"
	"fmt"
)

// Hex-prefix flag nibbles. The low bit carries path parity, the
// second bit distinguishes a leaf path from an extension path.
const (
	hpExtensionEven = 0x00
	hpExtensionOdd  = 0x10
	hpLeafEven      = 0x20
	hpLeafOdd       = 0x30
)

// hpEncode packs a nibble path together with its leaf/extension tag into
// the hex-prefix form used inside node encodings. An odd path stores its
// first nibble in the low half of the flag byte.
func hpEncode(path []byte, isLeaf bool) []byte {
	flag := byte(hpExtensionEven)
	if isLeaf {
		flag = hpLeafEven
	}
	if len(path)%2 == 1 {
		flag |= 0x10 | path[0]
		path = path[1:]
	}
	result := make([]byte, 1, 1+len(path)/2)
	result[0] = flag
	return append(result, fromNibbles(path)...)
}

// hpDecode recovers the nibble path and the leaf/extension tag from its
// hex-prefix form.
func hpDecode(b []byte) ([]byte, bool, error) {
	if len(b) == 0 {
		return nil, false, errors.New("empty hex-prefix encoding")
	}
	flag := b[0] >> 4
	if flag > 0x3 {
		return nil, false, fmt.Errorf("invalid hex-prefix flag: %#x", flag)
	}
	isLeaf := flag&0x2 != 0

	var path []byte
	if flag&0x1 != 0 {
		path = make([]byte, 0, 1+(len(b)-1)*2)
		path = append(path, b[0]&0x0F)
	} else {
		path = make([]byte, 0, (len(b)-1)*2)
	}
	return append(path, toNibbles(b[1:])...), isLeaf, nil
}
