package component_test

import (
	"testing"

	"github.com/helix-sim/helix/assert"
	"github.com/helix-sim/helix/component"
	"github.com/helix-sim/helix/testsuite"
	"github.com/helix-sim/helix/types"
)

func TestCloneProducesIndependentCopy(t *testing.T) {
	src := &testsuite.HealthComponent{Current: 80, Max: 100, Buffs: []string{"regen"}}

	cloned, err := src.Clone()
	assert.NilError(t, err)
	clone, ok := cloned.(*testsuite.HealthComponent)
	assert.True(t, ok)
	assert.NotSame(t, src, clone)
	assert.DeepEqual(t, *src, *clone)

	// mutating the source must not reach into the clone
	src.Current = 5
	src.Buffs[0] = "poison"
	assert.Equal(t, 80, clone.Current)
	assert.Equal(t, "regen", clone.Buffs[0])
}

func TestCopyToDifferentConcreteTypeFails(t *testing.T) {
	location := &testsuite.LocationComponent{X: 3, Y: 4}
	health := &testsuite.HealthComponent{Current: 50, Max: 100}

	err := location.CopyTo(health)
	assert.ErrorIs(t, err, component.ErrTypeMismatch)
	assert.Equal(t, 50, health.Current, "failed copy must not touch the target")
}

func TestCopyToSameTypeOverwritesWithoutAliasing(t *testing.T) {
	src := &testsuite.HealthComponent{Current: 80, Max: 100, Buffs: []string{"regen"}}
	dst := &testsuite.HealthComponent{Current: 1, Max: 1}

	assert.NilError(t, src.CopyTo(dst))
	assert.DeepEqual(t, *src, *dst)

	src.Buffs[0] = "poison"
	src.Current = 0
	assert.Equal(t, "regen", dst.Buffs[0])
	assert.Equal(t, 80, dst.Current)
}

func TestCloneKeepsAsyncCapableTag(t *testing.T) {
	energy := &testsuite.EnergyComponent{Amount: 10}

	clone, err := energy.Clone()
	assert.NilError(t, err)
	assert.True(t, types.IsAsyncCapable(clone))
}
