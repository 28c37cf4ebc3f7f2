package guard

import "errors"

var (
	// ErrNoMembership is recorded when the caller has no organization.
	ErrNoMembership = errors.New("guard: no organization membership")

	// ErrSlugMismatch is recorded when the requested organization is not the caller's.
	ErrSlugMismatch = errors.New("guard: organization slug mismatch")
)
