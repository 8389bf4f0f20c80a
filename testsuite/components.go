// Package testsuite holds the shared components and helpers used by the
// engine's tests.
package testsuite

import (
	"github.com/helix-sim/helix/component"
	"github.com/helix-sim/helix/events"
	"github.com/helix-sim/helix/types"
)

// LocationComponent is a test component for location-based tests.
type LocationComponent struct {
	X, Y uint64
}

func (*LocationComponent) Capability() string {
	return "location"
}

func (l *LocationComponent) Clone() (types.Component, error) {
	return component.Clone(l)
}

func (l *LocationComponent) CopyTo(target types.Component) error {
	return component.CopyInto(l, target)
}

// HealthComponent is a test component carrying a mutable slice, for
// aliasing checks on the clone/copy contract.
type HealthComponent struct {
	Current int
	Max     int
	Buffs   []string
}

func (*HealthComponent) Capability() string {
	return "health"
}

func (h *HealthComponent) Clone() (types.Component, error) {
	return component.Clone(h)
}

func (h *HealthComponent) CopyTo(target types.Component) error {
	return component.CopyInto(h, target)
}

// EnergyComponent is flagged async-capable so tests can check the tag
// survives cloning.
type EnergyComponent struct {
	Amount int
}

func (*EnergyComponent) Capability() string {
	return "energy"
}

func (e *EnergyComponent) Clone() (types.Component, error) {
	return component.Clone(e)
}

func (e *EnergyComponent) CopyTo(target types.Component) error {
	return component.CopyInto(e, target)
}

func (*EnergyComponent) AsyncWriteSafe() bool {
	return true
}

// MisconfiguredComponent declares the generic marker as its capability, the
// configuration mistake the engine must reject eagerly.
type MisconfiguredComponent struct {
	Value int
}

func (*MisconfiguredComponent) Capability() string {
	return types.GenericCapability
}

func (m *MisconfiguredComponent) Clone() (types.Component, error) {
	return component.Clone(m)
}

func (m *MisconfiguredComponent) CopyTo(target types.Component) error {
	return component.CopyInto(m, target)
}

// RecordingDispatcher captures posted events in order for assertions.
type RecordingDispatcher struct {
	Events []events.Event
}

func (d *RecordingDispatcher) Post(event events.Event) {
	d.Events = append(d.Events, event)
}

// Names returns the event names in post order.
func (d *RecordingDispatcher) Names() []string {
	names := make([]string, 0, len(d.Events))
	for _, ev := range d.Events {
		names = append(names, ev.EventName())
	}
	return names
}
