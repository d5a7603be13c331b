// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import log "github.com/luxfi/log"

// Logger is the structured logger type accepted by the engine and the
// production backends. A nil Logger is valid and silent: logging here
// is strictly an observability side channel, never part of a backend's
// or the engine's control flow.
type Logger = log.Logger

// NewDefaultLogger returns the package's usual logger, for callers (the
// demonstration CLI, tests) that want one without wiring their own.
func NewDefaultLogger() Logger {
	return log.NewTestLogger(log.InfoLevel)
}
