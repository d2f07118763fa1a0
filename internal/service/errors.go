package service

import "errors"

// Sentinel errors for the core services. Callers discriminate with
// errors.Is; everything else is wrapped context.
var (
	// ErrEmptyConcern means the caller submitted a concern with no
	// populated field. The HTTP boundary validates this before the
	// classifier runs, so seeing it from the service is a caller bug.
	ErrEmptyConcern = errors.New("concern has no populated field")

	// ErrClassificationUnavailable covers network/service failure or an
	// empty model response. Recoverable at the host level (retry).
	ErrClassificationUnavailable = errors.New("classification service unavailable")

	// ErrDirectoryUnavailable means the backing store is missing or its
	// schema does not match. Fatal for the current query; not retried.
	ErrDirectoryUnavailable = errors.New("doctor directory unavailable")

	// ErrUnknownTimeSlot means the requested slot is not one of the fixed
	// candidate slots.
	ErrUnknownTimeSlot = errors.New("unknown appointment time slot")

	// ErrDoctorNotFound means no directory record has the requested ID.
	ErrDoctorNotFound = errors.New("doctor not found")
)
