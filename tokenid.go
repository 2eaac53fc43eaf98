package fnsmetadata

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zkfairdomains/fns-metadata/schema"
)

const hexPrefix = "0x"

// ZkfNode is the namehash of the "zkf" top level name; registry nodes hang off it.
var ZkfNode = common.HexToHash("0xfb5f84575b89b73c6f6a4b64bfa657505766152eaf7a7bdcc4ffe2c678d72825")

// TokenID holds the two forms of a token identifier: Hex keys the index, Decimal is for display.
type TokenID struct {
	Hex     string
	Decimal string
}

func invalidTokenID(raw string) error {
	return schema.NewResolveError(schema.KindInvalidIdentifier, "malformed token id "+raw, nil)
}

// NormalizeTokenID accepts a decimal or 0x-prefixed hex token id of at most 256 bits.
// A full-width hex id is kept verbatim; shorter hex ids are zero padded to 32 bytes.
func NormalizeTokenID(raw string) (TokenID, error) {
	if !strings.HasPrefix(raw, hexPrefix) {
		n, ok := new(big.Int).SetString(raw, 10)
		if !ok || n.Sign() < 0 || n.BitLen() > 256 || strings.HasPrefix(raw, "+") {
			return TokenID{}, invalidTokenID(raw)
		}
		return TokenID{
			Hex:     hexutil.Encode(common.LeftPadBytes(n.Bytes(), 32)),
			Decimal: raw,
		}, nil
	}

	b, err := hexutil.Decode(raw)
	if err != nil || len(b) == 0 || len(b) > 32 {
		return TokenID{}, invalidTokenID(raw)
	}
	hexId := raw
	if len(b) < 32 {
		hexId = hexutil.Encode(common.LeftPadBytes(b, 32))
	}
	return TokenID{
		Hex:     hexId,
		Decimal: new(big.Int).SetBytes(b).String(),
	}, nil
}

// LabelHash is the keccak256 of a single label. The index keys v1 records by it.
func LabelHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}

// EthNameHash derives the registry node for a v1 token: keccak256(ZkfNode ++ label),
// where label is the token id as a 32 byte word. The registry is keyed by this node,
// never by the index id.
func EthNameHash(rawTokenId string) (common.Hash, error) {
	n, ok := parseTokenInt(rawTokenId)
	if !ok {
		return common.Hash{}, invalidTokenID(rawTokenId)
	}
	label := common.LeftPadBytes(n.Bytes(), 32)
	return crypto.Keccak256Hash(ZkfNode.Bytes(), label), nil
}

func parseTokenInt(raw string) (*big.Int, bool) {
	base := 10
	digits := raw
	if strings.HasPrefix(raw, hexPrefix) {
		base = 16
		digits = raw[len(hexPrefix):]
	}
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return nil, false
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.BitLen() > 256 {
		return nil, false
	}
	return n, true
}
