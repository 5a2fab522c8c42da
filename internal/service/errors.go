package service

import "errors"

var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the acting user does not own the entity it is
	// trying to mutate. Kept distinct from ErrNotFound so callers can say
	// "not yours" instead of implying the record never existed.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation means caller-supplied data failed basic shape checks.
	ErrValidation = errors.New("validation failed")
	// ErrEmailTaken means registration hit an existing account email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
