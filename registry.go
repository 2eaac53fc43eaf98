package fnsmetadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zkfairdomains/fns-metadata/schema"
)

const registryABI = `[{"inputs":[{"internalType":"bytes32","name":"node","type":"bytes32"}],"name":"recordExists","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"}]`

const methodRecordExists = "recordExists"

// Registry is the authoritative on-chain name registry. Only recordExists is used.
type Registry struct {
	address common.Address
	abi     abi.ABI
}

func NewRegistry(address string) (*Registry, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %s", schema.ErrInvalidAddress, address)
	}
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, err
	}
	return &Registry{address: common.HexToAddress(address), abi: parsed}, nil
}

func (r *Registry) Address() common.Address {
	return r.address
}

func (r *Registry) RecordExists(ctx context.Context, chain ChainReader, node common.Hash) (bool, error) {
	data, err := r.abi.Pack(methodRecordExists, [32]byte(node))
	if err != nil {
		return false, err
	}
	out, err := chain.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return false, err
	}
	res, err := r.abi.Unpack(methodRecordExists, out)
	if err != nil {
		return false, err
	}
	if len(res) != 1 {
		return false, fmt.Errorf("recordExists returned %d values", len(res))
	}
	exists, ok := res[0].(bool)
	if !ok {
		return false, fmt.Errorf("recordExists returned %T", res[0])
	}
	return exists, nil
}

func noResults(msg string, err error) error {
	return schema.NewResolveError(schema.KindNoResultsFound, msg, err)
}

// lookupOnChain runs after the index had no usable answer. The registry is the source
// of truth, so a record it knows about resolves to a placeholder instead of not found.
func (r *Resolver) lookupOnChain(ctx context.Context, chain ChainReader, rawTokenId string) (*schema.DomainRecord, error) {
	if rawTokenId == "" {
		return nil, noResults("missing parameters to construct namehash", nil)
	}
	node, err := EthNameHash(rawTokenId)
	if err != nil {
		return nil, noResults("construct namehash", err)
	}
	exists, err := r.registry.RecordExists(ctx, chain, node)
	if err != nil {
		return nil, noResults("registry call", err)
	}
	if !exists {
		return nil, noResults("name does not exist", nil)
	}
	return schema.NewPlaceholderRecord(), nil
}
