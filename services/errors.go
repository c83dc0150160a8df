package services

import "errors"

// ErrNotFound covers both a missing resource and a resource owned by a
// different user. Callers must not be able to tell the two apart.
var ErrNotFound = errors.New("resource not found")

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoGoal             = errors.New("no goal configured")
)
