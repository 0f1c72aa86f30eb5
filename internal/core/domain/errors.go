package domain

import "errors"

var (
	// ErrInvalidCredentials covers both a failed login and a token that does
	// not verify. Both surface as 400 so status codes alone do not reveal
	// whether a username exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidProductID   = errors.New("invalid product id")
)
