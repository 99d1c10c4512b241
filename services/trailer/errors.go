package trailer

import "errors"

var (
	// ErrTrailerNotFound indicates an unknown trailer ID.
	ErrTrailerNotFound = errors.New("trailer not found")
	// ErrNotOwner indicates a mutation by someone other than the owner.
	ErrNotOwner = errors.New("trailer does not belong to this user")
)
