// Package errs defines the sentinel errors shared across the service and
// repository layers. Controllers map them onto HTTP status codes.
package errs

import "errors"

var (
	// ErrNotFound covers both a missing entity and an ownership-filtered
	// mutation, so non-owners cannot distinguish the two.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but not permitted to
	// apply the requested mutation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput means a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for any failed password login,
	// including accounts that have no password set.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken means a user with the given email already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrEmailNotAllowed means the email is not on the configured allow-list.
	ErrEmailNotAllowed = errors.New("email is not allowed to register")
)
