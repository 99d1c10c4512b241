package rental

import "errors"

var (
	// ErrRentalNotFound indicates an unknown rental ID.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrNotParticipant indicates access by neither renter nor owner.
	ErrNotParticipant = errors.New("rental does not involve this user")
	// ErrTrailerUnavailable indicates the trailer is booked or unlisted for
	// the requested dates.
	ErrTrailerUnavailable = errors.New("trailer is not available for these dates")
	// ErrInvalidDateRange indicates a malformed or reversed date range.
	ErrInvalidDateRange = errors.New("invalid rental date range")
	// ErrInvalidTransition indicates a status change the current state does
	// not allow.
	ErrInvalidTransition = errors.New("rental status does not allow this action")
	// ErrOwnRental indicates a renter booking their own trailer.
	ErrOwnRental = errors.New("cannot rent your own trailer")
)
