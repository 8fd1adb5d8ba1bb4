package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrUsernameExists is returned when the username unique constraint fires.
	ErrUsernameExists = errors.New("username already exists")
	// ErrAlreadyExists is returned when a row with the same key already exists.
	ErrAlreadyExists = errors.New("already exists")
)
