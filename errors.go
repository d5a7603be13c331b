// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import "errors"

// ErrorKind classifies why a proof submission was rejected.
type ErrorKind uint8

const (
	// InvalidFormat marks a proof or input that could not be decoded.
	InvalidFormat ErrorKind = iota
	// InvalidNonce marks a submission whose nonce does not match the
	// engine's expected next nonce.
	InvalidNonce
	// StateMismatch marks a submission built against a stale state root.
	StateMismatch
	// InvalidProof marks a submission whose backend verification failed.
	InvalidProof
	// PolicyViolation marks a submission that failed the admissibility
	// policy after passing proof verification.
	PolicyViolation
	// CommitmentMismatch is reserved for a future check that the
	// claimed successor commitment is consistent with the proof; no
	// operation in this package emits it yet.
	CommitmentMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid_format"
	case InvalidNonce:
		return "invalid_nonce"
	case StateMismatch:
		return "state_mismatch"
	case InvalidProof:
		return "invalid_proof"
	case PolicyViolation:
		return "policy_violation"
	case CommitmentMismatch:
		return "commitment_mismatch"
	default:
		return "unknown"
	}
}

// VerifierError reports a rejected transition along with the kind of
// rejection and, where available, the underlying cause.
type VerifierError struct {
	Kind  ErrorKind
	Cause error
}

func (e *VerifierError) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Cause.Error()
}

func (e *VerifierError) Unwrap() error {
	return e.Cause
}

// newErr builds a VerifierError of the given kind, optionally wrapping
// cause. cause may be nil.
func newErr(kind ErrorKind, cause error) *VerifierError {
	return &VerifierError{Kind: kind, Cause: cause}
}

// Sentinel errors, one per kind, for errors.Is matching by callers that
// don't need the wrapped cause.
var (
	ErrInvalidFormat      = errors.New(InvalidFormat.String())
	ErrInvalidNonce       = errors.New(InvalidNonce.String())
	ErrStateMismatch      = errors.New(StateMismatch.String())
	ErrInvalidProof       = errors.New(InvalidProof.String())
	ErrPolicyViolation    = errors.New(PolicyViolation.String())
	ErrCommitmentMismatch = errors.New(CommitmentMismatch.String())
)

// Is reports whether target is the sentinel error for e's kind, so
// errors.Is(err, zkcg.ErrInvalidProof) works against a wrapped
// *VerifierError without callers needing to know about VerifierError.
func (e *VerifierError) Is(target error) bool {
	switch e.Kind {
	case InvalidFormat:
		return target == ErrInvalidFormat
	case InvalidNonce:
		return target == ErrInvalidNonce
	case StateMismatch:
		return target == ErrStateMismatch
	case InvalidProof:
		return target == ErrInvalidProof
	case PolicyViolation:
		return target == ErrPolicyViolation
	case CommitmentMismatch:
		return target == ErrCommitmentMismatch
	default:
		return false
	}
}
