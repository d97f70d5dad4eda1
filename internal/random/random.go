package random

import (
	"math/rand"

	"github.com/merklenet/statetrie/pkg/util"
)

// String returns a random string with the n as its length.
func String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(Int('A', 'Z'))
	}

	return string(b)
}

// Int returns a random integer in [minI,maxI).
func Int(minI, maxI int) int {
	return minI + rand.Intn(maxI-minI)
}

// Bytes returns a random byte slice of specified length.
func Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// Uint256 returns a random Uint256.
func Uint256() util.Uint256 {
	str := Bytes(util.Uint256Size)
	u, _ := util.Uint256DecodeBytes(str)
	return u
}
