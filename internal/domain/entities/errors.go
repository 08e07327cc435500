package entities

import "errors"

var (
	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAccountNotActive         = errors.New("account not active")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrCitationNotFound         = errors.New("citation not found")
	ErrTooManyRequests          = errors.New("too many requests")

	// ErrCorruptCredential marks a stored password hash that bcrypt cannot
	// parse. It must surface as an internal error, never as a failed login.
	ErrCorruptCredential = errors.New("corrupt credential")
)
