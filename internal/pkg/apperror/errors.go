// FILE: internal/pkg/apperror/errors.go
// Shared error kinds for the entitlement and broadcast core.
package apperror

import "errors"

var (
	// ErrConfiguration means a required setting (feature duration, SMTP relay
	// credentials, SMS provider key) is missing. Fatal to the single operation.
	ErrConfiguration = errors.New("configuration error")

	// ErrStoreUnavailable is a transient store failure. Callers may retry with
	// backoff. Must never be collapsed into a Locked verdict.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAudience rejects an unknown audience tag before any send.
	ErrInvalidAudience = errors.New("invalid audience")

	// ErrMissingContactInfo means a selected recipient lacks the contact field
	// the channel needs. Counted as a delivery failure, never skipped.
	ErrMissingContactInfo = errors.New("missing contact info")

	// ErrTransportFailure is a per-recipient send failure.
	ErrTransportFailure = errors.New("transport failure")

	// ErrNotImplemented marks a channel without a working transport (push).
	ErrNotImplemented = errors.New("not implemented")
)

func IsConfiguration(err error) bool     { return errors.Is(err, ErrConfiguration) }
func IsStoreUnavailable(err error) bool  { return errors.Is(err, ErrStoreUnavailable) }
func IsNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsInvalidAudience(err error) bool   { return errors.Is(err, ErrInvalidAudience) }
