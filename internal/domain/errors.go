package domain

import "errors"

// Error taxonomy shared across services and handlers. Services wrap these
// with context via fmt.Errorf("%w: ..."); handlers map them to HTTP codes
// with errors.Is.
var (
	// ErrValidation covers missing or malformed required input, such as an
	// empty mobile number or a wrong-length search identifier.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is a store-level uniqueness violation on mobile number,
	// national ID or username, or an ambiguous identifier collision where
	// mobile and national ID resolve to two different donors.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is an edit or delete referencing a nonexistent record.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means no valid actor credentials were presented.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the actor lacks the role for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrBlocked is an eligibility-rule rejection at save time.
	ErrBlocked = errors.New("donor blocked by eligibility rules")
)
