package fnsmetadata

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"
	"github.com/zkfairdomains/fns-metadata/schema"
	"github.com/zkfairdomains/fns-metadata/subgraph"
)

const (
	aliceTokenId = "123"
	aliceHex     = "0x000000000000000000000000000000000000000000000000000000000000007b"
)

var testNow = time.Unix(1750000000, 0)

func wait(ctx context.Context, d time.Duration, ignoreCtx bool) error {
	if d == 0 {
		return nil
	}
	if ignoreCtx {
		time.Sleep(d)
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type fakeIndexer struct {
	domain    *subgraph.GetDomainDomain
	err       error
	delay     time.Duration
	ignoreCtx bool

	block    uint64
	blockErr error

	calls        int32
	mu           sync.Mutex
	lastEndpoint string
	lastTokenId  string
}

func (f *fakeIndexer) QueryDomain(ctx context.Context, endpoint, tokenId string) (*subgraph.GetDomainDomain, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.lastEndpoint, f.lastTokenId = endpoint, tokenId
	f.mu.Unlock()
	if err := wait(ctx, f.delay, f.ignoreCtx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.domain == nil {
		return nil, subgraph.ErrDomainNotFound
	}
	return f.domain, nil
}

func (f *fakeIndexer) IndexedBlock(ctx context.Context, endpoint string) (uint64, error) {
	return f.block, f.blockErr
}

func (f *fakeIndexer) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

type fakeChain struct {
	exists    bool
	err       error
	delay     time.Duration
	ignoreCtx bool
	head      uint64

	calls    int32
	mu       sync.Mutex
	lastCall ethereum.CallMsg
}

func (f *fakeChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.lastCall = call
	f.mu.Unlock()
	if err := wait(ctx, f.delay, f.ignoreCtx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	// abi encoded bool
	out := make([]byte, 32)
	if f.exists {
		out[31] = 1
	}
	return out, nil
}

func (f *fakeChain) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeChain) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

func testConfig() schema.Config {
	cfg := schema.DefaultConfig()
	cfg.GraphURL = "http://index.test/sepolia"
	cfg.MetricsPort = ""
	cfg.RateLimit = 0
	cfg.IndexLagInterval = 0
	return cfg
}

func newTestNetworks(t *testing.T, cfg schema.Config, chain ChainReader) *Networks {
	networks, err := NewNetworks(cfg, func(string) (ChainReader, error) { return chain, nil })
	require.NoError(t, err)
	return networks
}

func newTestRegistry(t *testing.T) *Registry {
	registry, err := NewRegistry(schema.DefaultRegistry)
	require.NoError(t, err)
	return registry
}

func newTestResolver(t *testing.T, idx Indexer, chain ChainReader) *Resolver {
	r := NewResolver(newTestNetworks(t, testConfig(), chain), idx, newTestRegistry(t), false)
	r.now = func() time.Time { return testNow }
	return r
}

func aliceDomain() *subgraph.GetDomainDomain {
	return &subgraph.GetDomainDomain{
		Id:           aliceHex,
		Name:         "alice.zkf",
		LabelName:    "alice",
		CreatedAt:    "1700000000",
		RegisteredAt: "1700000000",
		ExpiryDate:   "1900000000",
	}
}
