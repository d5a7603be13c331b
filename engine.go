// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

// VerifierEngine owns a ProtocolState and a ProofBackend, and is the
// only component in this package allowed to mutate state. Every
// transition runs the full pipeline — state-root check, nonce check,
// proof verification, policy enforcement, mutation — inside a single
// exclusive critical section, so a rejected transition can never be
// observed to have partially applied.
type VerifierEngine struct {
	store   *StateStore
	backend ProofBackend
	policy  Policy
	logger  Logger
}

// NewVerifierEngine builds an engine starting from initial state,
// verifying proofs with backend and enforcing admissibility with
// policy. logger may be nil.
func NewVerifierEngine(initial ProtocolState, backend ProofBackend, policy Policy, logger Logger) *VerifierEngine {
	return &VerifierEngine{
		store:   NewStateStore(initial),
		backend: backend,
		policy:  policy,
		logger:  logger,
	}
}

// State returns a snapshot of the engine's current state.
func (e *VerifierEngine) State() ProtocolState {
	return e.store.Load()
}

// ProcessTransition attempts to advance the engine's state by one
// proof. On success the engine's state root becomes commitment.Root
// and its nonce increments by one; on any failure the engine's state
// is left exactly as it was.
//
// Steps run strictly in this order, each aborting the whole call on
// failure: state-root match, nonce match, backend verification, policy
// enforcement. Policy always runs after proof verification, so a
// submission that fails both is reported as InvalidProof, never
// PolicyViolation.
func (e *VerifierEngine) ProcessTransition(proofBytes []byte, inputs PublicInputs, commitment Commitment) error {
	return e.store.withLock(func(state *ProtocolState) error {
		if inputs.OldRoot != state.StateRoot {
			e.log("transition rejected", StateMismatch, state)
			return newErr(StateMismatch, nil)
		}
		if inputs.Nonce != state.Nonce+1 {
			e.log("transition rejected", InvalidNonce, state)
			return newErr(InvalidNonce, nil)
		}
		if err := e.backend.Verify(proofBytes, &inputs); err != nil {
			e.log("transition rejected", InvalidProof, state)
			return err
		}
		if err := e.policy.Enforce(&inputs); err != nil {
			e.log("transition rejected", PolicyViolation, state)
			return err
		}

		state.StateRoot = commitment.Root
		state.Nonce++
		if e.logger != nil {
			e.logger.Info("transition accepted", "nonce", state.Nonce, "epoch", state.Epoch)
		}
		return nil
	})
}

func (e *VerifierEngine) log(msg string, kind ErrorKind, state *ProtocolState) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, "kind", kind.String(), "nonce", state.Nonce, "epoch", state.Epoch)
}
