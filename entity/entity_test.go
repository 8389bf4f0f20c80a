package entity_test

import (
	"testing"

	"github.com/helix-sim/helix/assert"
	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/testsuite"
	"github.com/helix-sim/helix/types"
)

func TestNewValidatesCapabilityConfiguration(t *testing.T) {
	_, err := entity.New(1, &testsuite.MisconfiguredComponent{})
	assert.ErrorIs(t, err, types.ErrInvalidCapability)
}

func TestNewRejectsDuplicateCapabilities(t *testing.T) {
	_, err := entity.New(1,
		&testsuite.LocationComponent{X: 1},
		&testsuite.LocationComponent{X: 2},
	)
	assert.ErrorIs(t, err, entity.ErrDuplicateCapability)
}

func TestComponentLookup(t *testing.T) {
	e, err := entity.New(7, &testsuite.LocationComponent{X: 1, Y: 2})
	assert.NilError(t, err)
	assert.Equal(t, types.EntityID(7), e.ID())
	assert.Equal(t, "", e.Prototype())

	assert.True(t, e.Has("location"))
	c, err := e.Component("location")
	assert.NilError(t, err)
	assert.Equal(t, "location", c.Capability())

	assert.False(t, e.Has("health"))
	_, err = e.Component("health")
	assert.ErrorIs(t, err, entity.ErrComponentNotOnEntity)
}

func TestSetComponentReplacesExisting(t *testing.T) {
	e, err := entity.New(1, &testsuite.LocationComponent{X: 1})
	assert.NilError(t, err)

	assert.NilError(t, e.SetComponent(&testsuite.LocationComponent{X: 9}))
	c, err := e.Component("location")
	assert.NilError(t, err)
	assert.Equal(t, uint64(9), c.(*testsuite.LocationComponent).X)

	err = e.SetComponent(&testsuite.MisconfiguredComponent{})
	assert.ErrorIs(t, err, types.ErrInvalidCapability)
}

func TestRemoveComponent(t *testing.T) {
	e, err := entity.New(1,
		&testsuite.LocationComponent{},
		&testsuite.HealthComponent{},
	)
	assert.NilError(t, err)

	assert.NilError(t, e.RemoveComponent("health"))
	assert.False(t, e.Has("health"))

	err = e.RemoveComponent("health")
	assert.ErrorIs(t, err, entity.ErrComponentNotOnEntity)
}

func TestSnapshotsAreSortedByCapability(t *testing.T) {
	e, err := entity.New(1,
		&testsuite.LocationComponent{},
		&testsuite.EnergyComponent{},
		&testsuite.HealthComponent{},
	)
	assert.NilError(t, err)

	assert.DeepEqual(t, []string{"energy", "health", "location"}, e.Capabilities())

	components := e.Components()
	assert.Len(t, components, 3)
	assert.Equal(t, "energy", components[0].Capability())
	assert.Equal(t, "location", components[2].Capability())
}

func TestPrototypeNameIsRecorded(t *testing.T) {
	e, err := entity.NewFromTemplate(3, "grunt", &testsuite.HealthComponent{})
	assert.NilError(t, err)
	assert.Equal(t, "grunt", e.Prototype())
}
