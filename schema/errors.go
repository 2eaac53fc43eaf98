package schema

import (
	"errors"
	"net/http"
)

var (
	ErrUnknownProvider = errors.New("unknown_node_provider")
	ErrInvalidAddress  = errors.New("invalid_registry_address")
	ErrInvalidRPCURL   = errors.New("invalid_rpc_url")
)

// ErrKind is the closed set of resolution failures. Status codes are chosen from it alone.
type ErrKind int

const (
	KindUnknown ErrKind = iota
	KindUnsupportedNetwork
	KindInvalidIdentifier
	KindRecordNotFound
	KindIndexUnavailable
	KindExpiredName
	KindNamehashMismatch
	KindNoResultsFound
	KindTimeout
)

const (
	MsgNoResultsFound    = "No results found."
	MsgTimeout           = "Timeout"
	MsgInvalidIdentifier = "Invalid token id."
)

func (k ErrKind) String() string {
	switch k {
	case KindUnsupportedNetwork:
		return "unsupported_network"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindRecordNotFound:
		return "record_not_found"
	case KindIndexUnavailable:
		return "index_unavailable"
	case KindExpiredName:
		return "expired_name"
	case KindNamehashMismatch:
		return "namehash_mismatch"
	case KindNoResultsFound:
		return "no_results_found"
	case KindTimeout:
		return "timeout"
	}
	return "unknown"
}

func (k ErrKind) StatusCode() int {
	switch k {
	case KindUnsupportedNetwork:
		return http.StatusNotImplemented
	case KindInvalidIdentifier:
		return http.StatusBadRequest
	case KindExpiredName:
		return http.StatusGone
	case KindTimeout:
		return http.StatusGatewayTimeout
	}
	// NamehashMismatch, NoResultsFound and anything unexpected surface as not found.
	return http.StatusNotFound
}

// Fallback reports whether the on-chain registry should be consulted after a primary failure of this kind.
func (k ErrKind) Fallback() bool {
	return k == KindRecordNotFound || k == KindIndexUnavailable
}

type ResolveError struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func NewResolveError(kind ErrKind, msg string, err error) *ResolveError {
	return &ResolveError{Kind: kind, Msg: msg, Err: err}
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Message is the text shown to callers. Kinds whose message could leak backend details
// are flattened to the generic not-found text.
func (e *ResolveError) Message() string {
	switch e.Kind {
	case KindUnsupportedNetwork, KindExpiredName, KindNamehashMismatch:
		return e.Msg
	case KindInvalidIdentifier:
		return MsgInvalidIdentifier
	case KindTimeout:
		return MsgTimeout
	}
	return MsgNoResultsFound
}

// KindOf returns the kind carried by err, or KindUnknown when err is not a *ResolveError.
func KindOf(err error) ErrKind {
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// Outcome maps any error to the status code and message written to the caller.
func Outcome(err error) (int, string) {
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Kind.StatusCode(), re.Message()
	}
	return http.StatusNotFound, MsgNoResultsFound
}
