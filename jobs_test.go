package fnsmetadata

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ProbeIndexLag(t *testing.T) {
	idx := &fakeIndexer{block: 90}
	s := newTestServer(t, testConfig(), idx, &fakeChain{head: 100})

	s.probeIndexLag()
	for _, name := range []string{NetworkZkfair, NetworkSepolia, NetworkGoerli} {
		assert.Equal(t, float64(10), testutil.ToFloat64(indexLagBlocks.WithLabelValues(name)), name)
	}

	// an index ahead of the rpc node reports no lag
	idx.block = 120
	s.probeIndexLag()
	assert.Equal(t, float64(0), testutil.ToFloat64(indexLagBlocks.WithLabelValues(NetworkZkfair)))

	// failed probes keep the last value
	idx.blockErr = errors.New("index down")
	idx.block = 0
	s.probeIndexLag()
	assert.Equal(t, float64(0), testutil.ToFloat64(indexLagBlocks.WithLabelValues(NetworkZkfair)))
}

func TestServer_ProbeIndexLagSkipsMissingRPC(t *testing.T) {
	cfg := testConfig()
	networks, err := NewNetworks(cfg, func(string) (ChainReader, error) { return nil, errors.New("no rpc") })
	require.NoError(t, err)
	idx := &fakeIndexer{block: 5}
	s := newServer(cfg, networks, idx, newTestRegistry(t))

	indexLagBlocks.Reset()
	assert.NotPanics(t, s.probeIndexLag)
	assert.Equal(t, 0, testutil.CollectAndCount(indexLagBlocks))
}
