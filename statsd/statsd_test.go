package statsd

import (
	"testing"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"

	"github.com/helix-sim/helix/assert"
)

func TestDefaultClientIsNoOp(t *testing.T) {
	_, ok := Client().(*ddstatsd.NoOpClient)
	assert.True(t, ok)
}

func TestInitRejectsEmptyAddress(t *testing.T) {
	err := Init("", nil)
	assert.ErrorContains(t, err, "address must not be empty")
}

func TestEmitWithNoOpClientIsHarmless(t *testing.T) {
	EmitCommitStat(time.Now(), "commit_added")
	EmitEntityCount(3)
}
