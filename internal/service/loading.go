// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync/atomic"

// loadingGuard is the single in-flight flag shared by the wallet session and
// the signing workflow. At most one holder exists at a time.
type loadingGuard struct {
	busy atomic.Bool
}

func (g *loadingGuard) tryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *loadingGuard) release() {
	g.busy.Store(false)
}

func (g *loadingGuard) loading() bool {
	return g.busy.Load()
}
