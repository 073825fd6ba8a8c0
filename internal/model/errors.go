package model

import "errors"

// ErrInvalidInput indicates a missing or malformed required field.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")
