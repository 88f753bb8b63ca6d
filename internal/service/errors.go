package service

import "errors"

var (
	// ErrInvalidInput means the request was well-formed JSON but its content
	// cannot be processed, such as whitespace-only text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the record exists but belongs to another owner.
	ErrForbidden = errors.New("record belongs to another owner")
)
