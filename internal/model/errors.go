// Package model defines the persisted entities of the reservation
// system: hotels, customers and reservations.  Each entity validates
// its own invariants; the registries call Validate after every
// mutation and on every record loaded from storage.
package model

// ValidationError reports an entity whose fields violate a model
// invariant: an empty required string, an unparsable date, a checkout
// that is not after the checkin, or an inventory counter out of range.
// It is always recoverable; registries surface it as a failed
// operation and never let it escape as anything fatal.
type ValidationError struct {
	Reason string
}

// Error returns the human-readable reason for the failure.
func (e *ValidationError) Error() string { return e.Reason }
