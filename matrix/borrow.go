// SPDX-License-Identifier: MIT

// File: borrow.go
// Role: runtime exclusivity guard for a Matrix and the views carved from it.
//
// Rules (fail fast, never recoverable):
//   - Any number of shared claims may overlap each other.
//   - An exclusive claim may not overlap any other live claim, except its own
//     ancestors (a sub-view always lies inside its parent).
//   - A claim with live sub-claims is re-borrowed: it cannot write, and it
//     cannot read while one of the sub-claims is exclusive. New sub-claims
//     are judged by the overlap rule alone.
//   - The Matrix itself cannot be read while an exclusive claim is live and
//     cannot be written or resized while any claim is live.
//
// Concurrency:
//   - Registration and release run under mu.
//   - Per-access checks are atomic loads only, so shared views can be read
//     from many goroutines at once.

package matrix

import (
	"sync"
	"sync/atomic"
)

// borrowGuard tracks live claims of one Matrix. A nil guard disables checking.
type borrowGuard struct {
	mu      sync.Mutex
	live    []*claim     // registration order; scanned on acquire
	claims  atomic.Int32 // live claims of either kind
	writers atomic.Int32 // live exclusive claims
}

// claim is the borrow held by one View or MutableView.
type claim struct {
	guard     *borrowGuard // nil when the owning Matrix has checking disabled
	parent    *claim       // nil for views carved straight from the Matrix
	rect      window       // absolute rectangle
	exclusive bool

	subs     atomic.Int32 // live direct sub-claims
	exclSubs atomic.Int32 // live direct exclusive sub-claims
	released atomic.Bool
}

// newBorrowGuard returns a guard, or nil when checking is disabled.
func newBorrowGuard(enabled bool) *borrowGuard {
	if !enabled {
		return nil
	}

	return &borrowGuard{}
}

// readBlocked reports whether direct Matrix reads are currently forbidden.
func (g *borrowGuard) readBlocked() bool {
	return g != nil && g.writers.Load() > 0
}

// writeBlocked reports whether direct Matrix writes are currently forbidden.
func (g *borrowGuard) writeBlocked() bool {
	return g != nil && g.claims.Load() > 0
}

// acquire registers a new claim over rect under parent.
// Returns ErrReleased when parent is already released and ErrBorrowConflict
// when the claim would break the exclusivity rules.
func (g *borrowGuard) acquire(parent *claim, rect window, exclusive bool) (*claim, error) {
	c := &claim{guard: g, parent: parent, rect: rect, exclusive: exclusive}
	if parent != nil && parent.released.Load() {
		return nil, ErrReleased
	}
	if g == nil {
		return c, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, other := range g.live {
		if !(exclusive || other.exclusive) {
			continue // readers never conflict with readers
		}
		if !other.rect.overlaps(rect) || c.descendsFrom(other) {
			continue
		}

		return nil, ErrBorrowConflict
	}

	g.live = append(g.live, c)
	g.claims.Add(1)
	if exclusive {
		g.writers.Add(1)
	}
	if parent != nil {
		parent.subs.Add(1)
		if exclusive {
			parent.exclSubs.Add(1)
		}
	}

	return c, nil
}

// descendsFrom reports whether anc is a strict ancestor of c.
func (c *claim) descendsFrom(anc *claim) bool {
	for p := c.parent; p != nil; p = p.parent {
		if p == anc {
			return true
		}
	}

	return false
}

// release ends the claim. Releasing twice is a no-op. Releasing a claim that
// still has live sub-claims returns ErrBorrowConflict and keeps it live.
func (c *claim) release() error {
	g := c.guard
	if g == nil {
		c.released.Store(true)
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if c.released.Load() {
		return nil
	}
	if c.subs.Load() > 0 {
		return ErrBorrowConflict
	}

	for i, other := range g.live {
		if other == c {
			g.live = append(g.live[:i], g.live[i+1:]...)
			break
		}
	}
	g.claims.Add(-1)
	if c.exclusive {
		g.writers.Add(-1)
	}
	if c.parent != nil {
		c.parent.subs.Add(-1)
		if c.exclusive {
			c.parent.exclSubs.Add(-1)
		}
	}
	c.released.Store(true)

	return nil
}

// readErr reports why a read through this claim is forbidden, if it is.
func (c *claim) readErr() error {
	if c.released.Load() {
		return ErrReleased
	}
	if c.exclSubs.Load() > 0 {
		return ErrBorrowConflict
	}

	return nil
}

// writeErr reports why a write through this claim is forbidden, if it is.
func (c *claim) writeErr() error {
	if c.released.Load() {
		return ErrReleased
	}
	if c.subs.Load() > 0 {
		return ErrBorrowConflict
	}

	return nil
}
