// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import "sync"

// StateStore guards a ProtocolState with a single mutex. It has no
// transactional API beyond mutual exclusion: callers needing atomicity
// across a read and a later write must do both inside withLock.
type StateStore struct {
	mu    sync.Mutex
	state ProtocolState
}

// NewStateStore creates a store holding the given initial state.
func NewStateStore(initial ProtocolState) *StateStore {
	return &StateStore{state: initial}
}

// Load returns a snapshot of the current state.
func (s *StateStore) Load() ProtocolState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Save overwrites the current state.
func (s *StateStore) Save(next ProtocolState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
}

// withLock runs fn with the store locked for its entire duration,
// passing a pointer to the live state. fn may read and, only on
// success, mutate *state; the mutation is retained only if fn returns
// nil. This is the primitive VerifierEngine uses to keep the whole
// transition pipeline — not just the final mutation — inside one
// critical section.
func (s *StateStore) withLock(fn func(state *ProtocolState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state
	if err := fn(&working); err != nil {
		return err
	}
	s.state = working
	return nil
}
