package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint256DecodeString(t *testing.T) {
	hexStr := "f037308fa0ab18155bccfc08485468c112409ea5064595699e98c545f245f32d"
	val, err := Uint256DecodeString(hexStr)
	require.NoError(t, err)
	require.Equal(t, hexStr, val.String())

	valPrefixed, err := Uint256DecodeString("0x" + hexStr)
	require.NoError(t, err)
	require.Equal(t, val, valPrefixed)

	_, err = Uint256DecodeString(hexStr[1:])
	require.Error(t, err)

	_, err = Uint256DecodeString(hexStr[:len(hexStr)-2] + "zz")
	require.Error(t, err)
}

func TestUint256DecodeBytes(t *testing.T) {
	hexStr := "f037308fa0ab18155bccfc08485468c112409ea5064595699e98c545f245f32d"
	val, err := Uint256DecodeString(hexStr)
	require.NoError(t, err)

	fromBytes, err := Uint256DecodeBytes(val.Bytes())
	require.NoError(t, err)
	require.Equal(t, val, fromBytes)

	_, err = Uint256DecodeBytes(val.Bytes()[:10])
	require.Error(t, err)
}

func TestUint256Equals(t *testing.T) {
	a := "f037308fa0ab18155bccfc08485468c112409ea5064595699e98c545f245f32d"
	b := "e287c5b29a1b66092be6803c59c765308ac20287e1b4977fd399da5fc8f66ab5"

	ua, err := Uint256DecodeString(a)
	require.NoError(t, err)
	ub, err := Uint256DecodeString(b)
	require.NoError(t, err)

	require.True(t, ua.Equals(ua))
	require.False(t, ua.Equals(ub))
}

func TestUint256MarshalJSON(t *testing.T) {
	str := "f037308fa0ab18155bccfc08485468c112409ea5064595699e98c545f245f32d"
	expected, err := Uint256DecodeString(str)
	require.NoError(t, err)

	data, err := json.Marshal(expected)
	require.NoError(t, err)
	require.Equal(t, `"0x`+str+`"`, string(data))

	var actual Uint256
	require.NoError(t, json.Unmarshal(data, &actual))
	require.Equal(t, expected, actual)
}
