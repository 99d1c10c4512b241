package user

import "errors"

var (
	// ErrUserNotFound indicates an unknown user ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates a registration with an already-used email.
	ErrEmailTaken = errors.New("a user with this email already exists")
)
