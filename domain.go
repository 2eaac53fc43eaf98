package fnsmetadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zkfairdomains/fns-metadata/schema"
	"github.com/zkfairdomains/fns-metadata/subgraph"
)

// Indexer is the index query collaborator. A missing record must be reported as
// subgraph.ErrDomainNotFound; every other error counts as the index being unavailable.
type Indexer interface {
	QueryDomain(ctx context.Context, endpoint, tokenId string) (*subgraph.GetDomainDomain, error)
	IndexedBlock(ctx context.Context, endpoint string) (uint64, error)
}

func parseSeconds(field, v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, v, err)
	}
	return n, nil
}

func expiredMessage(label string, expiresAt int64) string {
	at := time.UnixMilli(expiresAt).UTC().Format(http.TimeFormat)
	return fmt.Sprintf("'%s' is already been expired at %s.", label, at)
}

// lookupIndexed resolves a record from the index and applies the expiry policy.
func (r *Resolver) lookupIndexed(ctx context.Context, indexURL string, id TokenID) (*schema.DomainRecord, error) {
	domain, err := r.indexer.QueryDomain(ctx, indexURL, id.Hex)
	if err != nil {
		if errors.Is(err, subgraph.ErrDomainNotFound) {
			return nil, schema.NewResolveError(schema.KindRecordNotFound, "No record for "+id.Hex, err)
		}
		return nil, schema.NewResolveError(schema.KindIndexUnavailable, "index query failed", err)
	}

	if r.verifyNamehash && domain.LabelName != "" {
		// the index strips null bytes from names, so equal looking labels can hash differently
		if !strings.EqualFold(LabelHash(domain.LabelName).Hex(), id.Hex) {
			return nil, schema.NewResolveError(schema.KindNamehashMismatch,
				fmt.Sprintf("TokenID of the query does not match with namehash of %s", domain.LabelName), nil)
		}
	}

	createdAt, err := parseSeconds("createdAt", domain.CreatedAt)
	if err != nil {
		return nil, schema.NewResolveError(schema.KindIndexUnavailable, "malformed index record", err)
	}
	registeredAt, err := parseSeconds("registeredAt", domain.RegisteredAt)
	if err != nil {
		return nil, schema.NewResolveError(schema.KindIndexUnavailable, "malformed index record", err)
	}
	expiryDate, err := parseSeconds("expiryDate", domain.ExpiryDate)
	if err != nil {
		return nil, schema.NewResolveError(schema.KindIndexUnavailable, "malformed index record", err)
	}

	rec := &schema.DomainRecord{
		Name:         domain.Name,
		LabelName:    domain.LabelName,
		CanonicalID:  id.Hex,
		DecimalID:    id.Decimal,
		Version:      schema.V1,
		CreatedAt:    createdAt * 1000,
		RegisteredAt: registeredAt * 1000,
		ExpiresAt:    expiryDate * 1000,
	}

	if rec.ExpiresAt+schema.GracePeriodMs < r.now().UnixMilli() {
		return nil, schema.NewResolveError(schema.KindExpiredName, expiredMessage(rec.LabelName, rec.ExpiresAt), nil)
	}

	rec.AddAttribute(schema.Attribute{TraitType: "Registration Date", DisplayType: schema.DisplayTypeDate, Value: rec.RegisteredAt})
	rec.AddAttribute(schema.Attribute{TraitType: "Expiration Date", DisplayType: schema.DisplayTypeDate, Value: rec.ExpiresAt})
	rec.AddAttribute(schema.Attribute{TraitType: "Creation Date", DisplayType: schema.DisplayTypeDate, Value: rec.CreatedAt})
	return rec, nil
}
