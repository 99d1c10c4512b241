package listing

import "errors"

var (
	// ErrSessionNotFound indicates an expired or unknown listing session.
	ErrSessionNotFound = errors.New("listing session not found")
	// ErrNotSessionOwner indicates a session access by the wrong user.
	ErrNotSessionOwner = errors.New("listing session does not belong to this user")
	// ErrUnknownSection indicates a section identifier outside the registry.
	ErrUnknownSection = errors.New("unknown form section")
	// ErrIncompleteSections indicates a submit before all gating sections passed.
	ErrIncompleteSections = errors.New("required sections are not complete")
	// ErrTermsNotAccepted indicates a submit without accepted terms.
	ErrTermsNotAccepted = errors.New("terms have not been accepted")
	// ErrDraftNotFound indicates an unknown draft ID.
	ErrDraftNotFound = errors.New("draft not found")
)
