// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateStore_LoadSave(t *testing.T) {
	store := NewStateStore(Genesis())
	require.Equal(t, Genesis(), store.Load())

	next := ProtocolState{StateRoot: Hash{1}, Nonce: 1}
	store.Save(next)
	require.Equal(t, next, store.Load())
}

func TestStateStore_WithLockRollsBackOnError(t *testing.T) {
	store := NewStateStore(Genesis())

	err := store.withLock(func(state *ProtocolState) error {
		state.Nonce = 99
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, Genesis(), store.Load())
}

func TestStateStore_WithLockCommitsOnSuccess(t *testing.T) {
	store := NewStateStore(Genesis())

	err := store.withLock(func(state *ProtocolState) error {
		state.Nonce = 1
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), store.Load().Nonce)
}

func TestStateStore_ConcurrentAccessIsSerialized(t *testing.T) {
	store := NewStateStore(Genesis())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.withLock(func(state *ProtocolState) error {
				state.Nonce++
				return nil
			})
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(100), store.Load().Nonce)
}
