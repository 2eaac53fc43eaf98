package fnsmetadata

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkfairdomains/fns-metadata/schema"
)

func TestNormalizeTokenID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantHex string
		wantDec string
	}{
		{name: "decimal", raw: "123", wantHex: aliceHex, wantDec: "123"},
		{name: "zero", raw: "0", wantHex: "0x" + strings.Repeat("0", 64), wantDec: "0"},
		{name: "full hex", raw: aliceHex, wantHex: aliceHex, wantDec: "123"},
		{name: "short hex is padded", raw: "0x7b", wantHex: aliceHex, wantDec: "123"},
		{
			name:    "max uint256",
			raw:     "115792089237316195423570985008687907853269984665640564039457584007913129639935",
			wantHex: "0x" + strings.Repeat("f", 64),
			wantDec: "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NormalizeTokenID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, id.Hex)
			assert.Equal(t, tt.wantDec, id.Decimal)
			assert.Len(t, id.Hex, 66)
		})
	}
}

func TestNormalizeTokenID_RoundTrip(t *testing.T) {
	decimals := []string{"1", "42", "18446744073709551616"}
	for _, d := range decimals {
		id, err := NormalizeTokenID(d)
		require.NoError(t, err)
		assert.Equal(t, d, id.Decimal)
		assert.Len(t, id.Hex, 66)

		back, err := NormalizeTokenID(id.Hex)
		require.NoError(t, err)
		assert.Equal(t, id.Hex, back.Hex)
		assert.Equal(t, d, back.Decimal)
	}

	hexes := []string{
		"0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae",
		"0xFB5F84575B89B73C6F6A4B64BFA657505766152EAF7A7BDCC4FFE2C678D72825",
	}
	for _, h := range hexes {
		id, err := NormalizeTokenID(h)
		require.NoError(t, err)
		assert.Equal(t, h, id.Hex)
		n, ok := new(big.Int).SetString(h[2:], 16)
		require.True(t, ok)
		assert.Equal(t, n.String(), id.Decimal)
	}
}

func TestNormalizeTokenID_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"abc",
		"12.5",
		"-1",
		"+1",
		"0x",
		"0x7",
		"0xzz",
		"0x" + strings.Repeat("0", 66),
		"115792089237316195423570985008687907853269984665640564039457584007913129639936", // 2^256
	}
	for _, raw := range invalid {
		_, err := NormalizeTokenID(raw)
		assert.Error(t, err, raw)
		assert.Equal(t, schema.KindInvalidIdentifier, schema.KindOf(err), raw)
	}
}

func TestLabelHash(t *testing.T) {
	assert.Equal(t, "0x4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0", LabelHash("eth").Hex())
}

func TestEthNameHash(t *testing.T) {
	node, err := EthNameHash(aliceTokenId)
	require.NoError(t, err)

	label := common.HexToHash(aliceHex)
	want := crypto.Keccak256Hash(ZkfNode.Bytes(), label.Bytes())
	assert.Equal(t, want, node)
	// the registry key is never the index key
	assert.NotEqual(t, aliceHex, node.Hex())

	fromHex, err := EthNameHash(aliceHex)
	require.NoError(t, err)
	assert.Equal(t, node, fromHex)

	for _, raw := range []string{"", "0x", "abc", "-1"} {
		_, err := EthNameHash(raw)
		assert.Error(t, err, raw)
	}
}
