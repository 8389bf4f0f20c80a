package gate_test

import (
	"testing"

	"github.com/helix-sim/helix/assert"
	"github.com/helix-sim/helix/gate"
)

func TestOpenGateAlwaysGrantsEntry(t *testing.T) {
	g := gate.Open()
	assert.True(t, g.TryEnter())
	assert.True(t, g.TryEnter())
}

func TestLatchStartsOpen(t *testing.T) {
	l := gate.NewLatch()
	assert.True(t, l.TryEnter())
}

func TestLatchCloseAndReopen(t *testing.T) {
	l := gate.NewLatch()

	l.Close()
	assert.False(t, l.TryEnter())
	assert.False(t, l.TryEnter(), "a denied attempt must not reopen the latch")

	l.Reopen()
	assert.True(t, l.TryEnter())
}
