package fnsmetadata

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkfairdomains/fns-metadata/schema"
)

type shortChain struct{}

func (shortChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (shortChain) BlockNumber(ctx context.Context) (uint64, error) { return 0, nil }

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(schema.DefaultRegistry)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(schema.DefaultRegistry), r.Address())

	_, err = NewRegistry("0x1234")
	assert.ErrorIs(t, err, schema.ErrInvalidAddress)
}

func TestRegistry_RecordExists(t *testing.T) {
	r := newTestRegistry(t)
	node := common.HexToHash("0x01")

	for _, exists := range []bool{true, false} {
		chain := &fakeChain{exists: exists}
		got, err := r.RecordExists(context.Background(), chain, node)
		require.NoError(t, err)
		assert.Equal(t, exists, got)

		assert.Equal(t, r.Address(), *chain.lastCall.To)
		require.Len(t, chain.lastCall.Data, 36)
		assert.Equal(t, crypto.Keccak256([]byte("recordExists(bytes32)"))[:4], chain.lastCall.Data[:4])
		assert.Equal(t, node.Bytes(), chain.lastCall.Data[4:])
	}

	callErr := errors.New("rpc down")
	_, err := r.RecordExists(context.Background(), &fakeChain{err: callErr}, node)
	assert.ErrorIs(t, err, callErr)

	_, err = r.RecordExists(context.Background(), shortChain{}, node)
	assert.Error(t, err)
}

func TestResolver_LookupOnChain(t *testing.T) {
	chain := &fakeChain{exists: true}
	r := newTestResolver(t, &fakeIndexer{}, chain)

	rec, err := r.lookupOnChain(context.Background(), chain, aliceTokenId)
	require.NoError(t, err)
	assert.True(t, rec.Placeholder)
	assert.Equal(t, schema.PlaceholderName, rec.Name)
	assert.Equal(t, schema.PlaceholderCreatedAt, rec.CreatedAt)
	assert.Equal(t, "", rec.CanonicalID)
	assert.Equal(t, schema.V1, rec.Version)
	assert.Zero(t, rec.ExpiresAt)

	node, err := EthNameHash(aliceTokenId)
	require.NoError(t, err)
	assert.Equal(t, node.Bytes(), chain.lastCall.Data[4:])
}

func TestResolver_LookupOnChainNoResults(t *testing.T) {
	tests := []struct {
		name    string
		chain   *fakeChain
		tokenId string
		calls   int
	}{
		{name: "registry says no", chain: &fakeChain{exists: false}, tokenId: aliceTokenId, calls: 1},
		{name: "registry error", chain: &fakeChain{err: errors.New("boom")}, tokenId: aliceTokenId, calls: 1},
		{name: "missing token id", chain: &fakeChain{exists: true}, tokenId: "", calls: 0},
		{name: "malformed token id", chain: &fakeChain{exists: true}, tokenId: "alice", calls: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, &fakeIndexer{}, tt.chain)
			_, err := r.lookupOnChain(context.Background(), tt.chain, tt.tokenId)
			assert.Equal(t, schema.KindNoResultsFound, schema.KindOf(err))
			assert.Equal(t, tt.calls, tt.chain.Calls())
		})
	}
}
