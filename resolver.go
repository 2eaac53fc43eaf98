package fnsmetadata

import (
	"context"
	"time"

	"github.com/zkfairdomains/fns-metadata/schema"
)

// Request carries the path parameters of one metadata call.
type Request struct {
	Network  string
	Contract string
	TokenId  string
}

type Resolution struct {
	Network         *Network
	TokenID         TokenID
	Record          *schema.DomainRecord
	LastRequestDate int64 // unix ms, taken when resolution started
}

// Resolver sequences network resolution, the indexed lookup and the registry fallback.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	networks       *Networks
	indexer        Indexer
	registry       *Registry
	verifyNamehash bool
	now            func() time.Time
}

func NewResolver(networks *Networks, indexer Indexer, registry *Registry, verifyNamehash bool) *Resolver {
	return &Resolver{
		networks:       networks,
		indexer:        indexer,
		registry:       registry,
		verifyNamehash: verifyNamehash,
		now:            time.Now,
	}
}

// Resolve never retries. The fallback runs at most once and only after the indexed
// lookup failed with RecordNotFound or IndexUnavailable.
func (r *Resolver) Resolve(ctx context.Context, req Request) (res *Resolution, err error) {
	start := r.now()
	network := req.Network
	defer func() {
		metricResolve(network, start, res, err)
	}()

	n, err := r.networks.Resolve(req.Network)
	if err != nil {
		network = "unsupported"
		return nil, err
	}

	id, err := NormalizeTokenID(req.TokenId)
	if err != nil {
		return nil, err
	}
	res = &Resolution{Network: n, TokenID: id, LastRequestDate: start.UnixMilli()}

	rec, err := r.lookupIndexed(ctx, n.IndexURL, id)
	if err == nil {
		res.Record = rec
		return res, nil
	}
	if !schema.KindOf(err).Fallback() {
		log.Debug("indexed lookup failed", "network", n.Name, "tokenId", id.Hex, "err", err)
		return nil, err
	}

	log.Debug("index has no usable answer, asking registry", "network", n.Name, "tokenId", id.Hex, "err", err)
	if n.Chain == nil {
		return nil, noResults("registry unreachable on "+n.Name, n.DialErr)
	}
	rec, err = r.lookupOnChain(ctx, n.Chain, req.TokenId)
	if err != nil {
		return nil, err
	}
	res.Record = rec
	return res, nil
}
