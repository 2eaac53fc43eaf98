package fnsmetadata

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zkfairdomains/fns-metadata/schema"
)

const (
	NetworkLocal   = "local"
	NetworkRinkeby = "rinkeby"
	NetworkRopsten = "ropsten"
	NetworkGoerli  = "goerli"
	NetworkSepolia = "sepolia"
	NetworkMainnet = "mainnet"
	NetworkZkfair  = "zkfair"

	ProviderInfura     = "INFURA"
	ProviderCloudflare = "CLOUDFLARE"
	ProviderGoogle     = "GOOGLE"
	ProviderGeth       = "GETH"

	goerliGraphURL = "https://api.thegraph.com/subgraphs/name/zkfairdomains/zkf-subgraph-goerli"
	zkfairGraphURL = "https://graphql.zkfair.domains/subgraphs/name/zkfairdomains/zkf-subgraph"

	// appended to index urls for request measurability on the graph side
	sourceParam = "?source=fns-metadata"
)

// ChainReader is the read-only chain handle used by the registry fallback and the lag probe.
type ChainReader interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Dialer binds a chain handle to an rpc url. It must not perform network I/O.
type Dialer func(rpcURL string) (ChainReader, error)

// DialEthClient only accepts http(s) urls; ws and ipc transports connect on dial.
func DialEthClient(rpcURL string) (ChainReader, error) {
	if !strings.HasPrefix(rpcURL, "http://") && !strings.HasPrefix(rpcURL, "https://") {
		return nil, fmt.Errorf("%w: %q", schema.ErrInvalidRPCURL, rpcURL)
	}
	return ethclient.Dial(rpcURL)
}

type Network struct {
	Name     string
	RPCURL   string
	IndexURL string
	HasIndex bool // false when no index base url is configured

	// Chain is nil when the rpc url could not be bound; DialErr says why.
	Chain   ChainReader
	DialErr error
}

// Networks is the closed set of supported networks, resolved once at startup and shared read-only.
// A network whose rpc url is unusable stays supported and only loses the registry fallback.
type Networks struct {
	networks map[string]*Network
}

func supportedIndexURLs(cfg schema.Config) map[string]string {
	return map[string]string{
		NetworkSepolia: cfg.GraphURL,
		NetworkGoerli:  goerliGraphURL,
		NetworkMainnet: cfg.MainnetGraphURL,
		NetworkZkfair:  zkfairGraphURL,
	}
}

func NewNetworks(cfg schema.Config, dial Dialer) (*Networks, error) {
	ns := &Networks{networks: make(map[string]*Network)}
	for name, indexBase := range supportedIndexURLs(cfg) {
		rpcURL, err := web3URL(cfg, name)
		if err != nil {
			return nil, err
		}
		n := &Network{
			Name:     name,
			RPCURL:   rpcURL,
			IndexURL: indexBase + sourceParam,
			HasIndex: indexBase != "",
		}
		if n.Chain, err = dial(rpcURL); err != nil {
			n.Chain = nil
			n.DialErr = fmt.Errorf("dial %s rpc: %w", name, err)
			log.Warn("rpc unavailable, registry fallback disabled", "network", name, "rpc", rpcURL, "err", err)
		}
		ns.networks[name] = n
	}
	return ns, nil
}

func (ns *Networks) Resolve(name string) (*Network, error) {
	n, ok := ns.networks[name]
	if !ok {
		return nil, schema.NewResolveError(schema.KindUnsupportedNetwork, fmt.Sprintf("Unknown network '%s'", name), nil)
	}
	return n, nil
}

func (ns *Networks) All() []*Network {
	res := make([]*Network, 0, len(ns.networks))
	for _, n := range ns.networks {
		res = append(res, n)
	}
	return res
}

func web3URL(cfg schema.Config, network string) (string, error) {
	api := cfg.NodeProviderURL
	switch strings.ToUpper(cfg.NodeProvider) {
	case ProviderInfura:
		return strings.Replace(api, "https://", "https://"+network+".", 1), nil
	case ProviderCloudflare:
		return api + "/" + network, nil
	case ProviderGoogle:
		if network == NetworkMainnet {
			return api, nil
		}
		if network == NetworkGoerli {
			return cfg.NodeProviderURLGoerli, nil
		}
		return cfg.NodeProviderURLCF + "/" + network, nil
	case ProviderGeth:
		return api, nil
	}
	return "", fmt.Errorf("%w: %s", schema.ErrUnknownProvider, cfg.NodeProvider)
}
