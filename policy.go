// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

// Policy enforces admissibility rules over PublicInputs after a proof
// has already been verified. Enforce must be pure and side-effect-free.
type Policy interface {
	Enforce(inputs *PublicInputs) error
}

// DefaultPolicy is the current admissibility rule: a threshold of zero
// is never admissible. Real credit-gating constraints are expected to
// move inside the proof itself over time; this stays a placeholder gate
// at the engine boundary until then.
type DefaultPolicy struct{}

func (DefaultPolicy) Enforce(inputs *PublicInputs) error {
	if inputs.Threshold == 0 {
		return newErr(PolicyViolation, nil)
	}
	return nil
}
