package subgraph

//go:generate go run github.com/Khan/genqlient genqlient.yaml

import (
	"context"
	"errors"
	"net/http"

	"github.com/Khan/genqlient/graphql"
	"github.com/zkfairdomains/fns-metadata/common"
)

var log = common.NewLog("subgraph")

var (
	ErrDomainNotFound = errors.New("subgraph_domain_not_found")
	ErrNoIndexedBlock = errors.New("subgraph_no_indexed_block")
)

// Subgraph queries domain records from a graph-node endpoint. Endpoints differ per
// network so the graphql client is bound per call.
type Subgraph struct {
	httpClient *http.Client
}

func New(httpClient *http.Client) *Subgraph {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Subgraph{httpClient: httpClient}
}

func (g *Subgraph) client(endpoint string) graphql.Client {
	return graphql.NewClient(endpoint, g.httpClient)
}

// QueryDomain is a point lookup by token id. A missing record is reported as
// ErrDomainNotFound, anything else is a transport or parse failure.
func (g *Subgraph) QueryDomain(ctx context.Context, endpoint, tokenId string) (*GetDomainDomain, error) {
	resp, err := GetDomain(ctx, g.client(endpoint), tokenId)
	if err != nil {
		log.Warn("subgraph get domain error", "tokenId", tokenId, "err", err)
		return nil, err
	}
	if resp.Domain == nil || resp.Domain.Id == "" {
		return nil, ErrDomainNotFound
	}
	return resp.Domain, nil
}

func (g *Subgraph) IndexedBlock(ctx context.Context, endpoint string) (uint64, error) {
	resp, err := GetIndexedBlock(ctx, g.client(endpoint))
	if err != nil {
		return 0, err
	}
	if resp.Indexed == nil || resp.Indexed.Block == nil {
		return 0, ErrNoIndexedBlock
	}
	return uint64(resp.Indexed.Block.Number), nil
}
