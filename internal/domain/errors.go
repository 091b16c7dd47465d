package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed is returned when a report signature is missing, malformed or
	// produced by an unknown or unapproved signing device
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrStaleState is returned when a reported counter is lower than the counter already known
	ErrStaleState = errors.New("stale token state")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenArchived is returned when a report targets a retired token
	ErrTokenArchived = errors.New("token archived")

	// ErrTokenAlreadyExists is returned when issuing a token whose external uid is taken
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrTransactionConflict is returned when two sources disagree about a confirmed transaction
	ErrTransactionConflict = errors.New("transaction value conflict")

	// ErrTransient is returned when the storage layer kept reporting contention after all retries
	ErrTransient = errors.New("transient storage failure")

	// ErrInvalidReport is returned when a report is structurally invalid
	ErrInvalidReport = errors.New("invalid report")

	// ErrDeviceNotFound is returned when a signing device is not registered
	ErrDeviceNotFound = errors.New("signing device not found")

	// ErrDeviceAlreadyExists is returned when registering a device uid twice within a tenant
	ErrDeviceAlreadyExists = errors.New("signing device already exists")
)

// StaleStateError carries the counters involved in a rejected snapshot
type StaleStateError struct {
	TokenUID        string
	ReportedCounter uint64
	KnownCounter    uint64
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("%s: token %s reported counter %d below known counter %d",
		ErrStaleState, e.TokenUID, e.ReportedCounter, e.KnownCounter)
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// TransactionConflictError describes a disagreement on a confirmed counter slot
type TransactionConflictError struct {
	TokenID         int64
	CounterPosition uint64
	RecordedValue   int64
	ReportedValue   int64
}

func (e *TransactionConflictError) Error() string {
	return fmt.Sprintf("%s: token %d position %d recorded %d, reported %d",
		ErrTransactionConflict, e.TokenID, e.CounterPosition, e.RecordedValue, e.ReportedValue)
}

func (e *TransactionConflictError) Unwrap() error {
	return ErrTransactionConflict
}

// ErrorKind is the closed set of outcomes a merge can fail with
type ErrorKind int

const (
	// KindNone means no error
	KindNone ErrorKind = iota
	// KindAuthentication means the report provenance was rejected
	KindAuthentication
	// KindStaleState means the reported counter regressed
	KindStaleState
	// KindUnknownToken means the token could not be resolved within the tenant
	KindUnknownToken
	// KindArchivedToken means the token has been retired
	KindArchivedToken
	// KindConflict means a confirmed transaction value was contradicted
	KindConflict
	// KindTransient means storage contention outlived the retry budget
	KindTransient
	// KindInvalid means the report failed validation
	KindInvalid
	// KindInternal is anything else
	KindInternal
)

// String returns the stable name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuthentication:
		return "authentication"
	case KindStaleState:
		return "stale_state"
	case KindUnknownToken:
		return "unknown_token"
	case KindArchivedToken:
		return "archived_token"
	case KindConflict:
		return "conflict"
	case KindTransient:
		return "transient"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Semantic reports whether the kind is terminal for the unit of work.
// Semantic errors are never retried.
func (k ErrorKind) Semantic() bool {
	switch k {
	case KindAuthentication, KindStaleState, KindUnknownToken, KindArchivedToken, KindConflict, KindInvalid:
		return true
	default:
		return false
	}
}

// KindOf classifies an error into an ErrorKind
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAuthenticationFailed), errors.Is(err, ErrDeviceNotFound):
		return KindAuthentication
	case errors.Is(err, ErrStaleState):
		return KindStaleState
	case errors.Is(err, ErrTokenNotFound):
		return KindUnknownToken
	case errors.Is(err, ErrTokenArchived):
		return KindArchivedToken
	case errors.Is(err, ErrTransactionConflict):
		return KindConflict
	case errors.Is(err, ErrTransient):
		return KindTransient
	case errors.Is(err, ErrInvalidReport):
		return KindInvalid
	default:
		return KindInternal
	}
}
