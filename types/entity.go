package types

// EntityID identifies a live simulation object. IDs are allocated by the
// entity service and are never reused for the lifetime of a service instance.
type EntityID uint64
