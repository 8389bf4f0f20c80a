// Package gate provides the reentrancy guard consulted before entity
// creation. The gate serializes logical reentrancy within the single
// simulation thread, e.g. to keep a system iterating the live entity set
// from triggering creation mid-iteration; it is not cross-thread mutual
// exclusion.
package gate

import "sync/atomic"

// Gate grants or denies entry to entity-creation requests.
type Gate interface {
	// TryEnter reports whether entity creation is currently permitted.
	TryEnter() bool
}

type openGate struct{}

func (openGate) TryEnter() bool { return true }

// Open returns the default gate, which always grants entry.
func Open() Gate {
	return openGate{}
}

// Latch is a closable Gate. A tick phase that forbids creation closes the
// latch on entry and reopens it on exit.
type Latch struct {
	closed atomic.Bool
}

func NewLatch() *Latch {
	return &Latch{}
}

func (l *Latch) TryEnter() bool {
	return !l.closed.Load()
}

func (l *Latch) Close() {
	l.closed.Store(true)
}

func (l *Latch) Reopen() {
	l.closed.Store(false)
}
