package domain

// StatusKind enumerates generation lifecycle states for a single era.
type StatusKind string

const (
	StatusPending StatusKind = "pending"
	StatusDone    StatusKind = "done"
	StatusError   StatusKind = "error"
)

// GenerationStatus is the tagged variant tracked per era: exactly one of the
// three kinds is active at any instant. Image is set only when Kind is
// StatusDone; ErrorMessage only when Kind is StatusError. Every update is a
// whole-value replacement, never a field-level mutation of a shared entry.
type GenerationStatus struct {
	Kind         StatusKind
	Image        *ImageAsset
	ErrorMessage string
}

// Pending reports whether a request for this era is still outstanding.
func (s GenerationStatus) Pending() bool {
	return s.Kind == StatusPending
}

// Settled reports whether the era has reached a terminal state.
func (s GenerationStatus) Settled() bool {
	return s.Kind == StatusDone || s.Kind == StatusError
}
