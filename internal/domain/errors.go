package domain

import "errors"

// Pipeline error taxonomy. Every stage tags its failures with one of these
// sentinels via errors.Join so callers can map them to distinct responses.
var (
	ErrMissingInput  = errors.New("missing input")
	ErrTransport     = errors.New("transport failure")
	ErrDecode        = errors.New("decode failure")
	ErrEmptyResult   = errors.New("empty result")
	ErrNormalization = errors.New("normalization failure")
	ErrPersist       = errors.New("persist failure")
)

type ErrorKind string

const (
	KindMissingInput  ErrorKind = "missing_input"
	KindTransport     ErrorKind = "transport_failure"
	KindDecode        ErrorKind = "decode_failure"
	KindEmptyResult   ErrorKind = "empty_result"
	KindNormalization ErrorKind = "normalization_failure"
	KindPersist       ErrorKind = "persist_failure"
	KindUnknown       ErrorKind = "unknown"
)

func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingInput):
		return KindMissingInput
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrEmptyResult):
		return KindEmptyResult
	case errors.Is(err, ErrNormalization):
		return KindNormalization
	case errors.Is(err, ErrPersist):
		return KindPersist
	default:
		return KindUnknown
	}
}
