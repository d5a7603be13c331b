// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import "golang.org/x/sync/errgroup"

// BatchItem is one proof/public-input pair submitted to VerifyBatch.
type BatchItem struct {
	ProofBytes []byte
	Inputs     PublicInputs
}

// VerifyBatch runs backend.Verify concurrently over items and returns
// one error per item (nil for an accepted proof), in the same order as
// items. It calls backend.Verify directly, never an engine's
// ProcessTransition, so it never mutates any engine's state and is not
// a way to parallelize state transitions — only a way to exercise and
// benefit from a backend's concurrency-safety guarantee when checking
// many independent proofs at once.
func VerifyBatch(backend ProofBackend, items []BatchItem) []error {
	results := make([]error, len(items))

	var g errgroup.Group
	for i := range items {
		i := i
		g.Go(func() error {
			inputs := items[i].Inputs
			results[i] = backend.Verify(items[i].ProofBytes, &inputs)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
